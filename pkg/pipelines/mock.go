package pipelines

import (
	"context"
	"strings"
	"testing"

	pipelinev1 "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1beta1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

var _ PipelineRunner = (*MockRunner)(nil)

// NewMockRunner creates and returns a new mock PipelineRunner.
func NewMockRunner(t *testing.T) *MockRunner {
	return &MockRunner{runs: make(map[string][]pipelinev1.Param), t: t}
}

// MockRunner is a mock pipeline runner that returns fixed responses to runs.
type MockRunner struct {
	t        *testing.T
	runs     map[string][]pipelinev1.Param
	runError error
}

// Run is an implementation of the PipelineRunner interface.
func (m *MockRunner) Run(ctx context.Context, pipelineName, ns, serviceAccountName string, params []pipelinev1.Param, labels map[string]string) (*pipelinev1.PipelineRun, error) {
	if m.runError != nil {
		return nil, m.runError
	}
	m.runs[mockKey(pipelineName, ns)] = params
	return &pipelinev1.PipelineRun{
		ObjectMeta: metav1.ObjectMeta{Name: pipelineName + "-run", Namespace: ns, Labels: labels},
	}, nil
}

// AssertPipelineRun ensures that the pipeline run was triggered, and returns
// the params it was triggered with.
func (m *MockRunner) AssertPipelineRun(pipelineName, ns string) []pipelinev1.Param {
	m.t.Helper()
	params, ok := m.runs[mockKey(pipelineName, ns)]
	if !ok {
		m.t.Fatalf("no pipeline run for %s / %s", pipelineName, ns)
	}
	return params
}

// RefutePipelineRun ensures that the pipeline run was not triggered.
func (m *MockRunner) RefutePipelineRun(pipelineName, ns string) {
	m.t.Helper()
	if _, ok := m.runs[mockKey(pipelineName, ns)]; ok {
		m.t.Fatalf("pipeline %s / %s was run", pipelineName, ns)
	}
}

// Reset forgets the runs so far.
func (m *MockRunner) Reset() {
	m.runs = make(map[string][]pipelinev1.Param)
}

// FailWithError configures the runner to return errors.
func (m *MockRunner) FailWithError(err error) {
	m.runError = err
}

func mockKey(pipelineName, ns string) string {
	return strings.Join([]string{pipelineName, ns}, ":")
}
