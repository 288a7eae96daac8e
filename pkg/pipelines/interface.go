package pipelines

import (
	"context"

	pipelinev1 "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1beta1"
)

// RepositoryLabel is added to PipelineRuns to identify the StoreRepository
// that triggered them.
const RepositoryLabel = "polling.tekton.dev/store-repository"

// PipelineRunner executes a pipeline by name, with the params evaluated from
// the poll.
type PipelineRunner interface {
	Run(ctx context.Context, pipelineName, ns, serviceAccountName string, params []pipelinev1.Param, labels map[string]string) (*pipelinev1.PipelineRun, error)
}
