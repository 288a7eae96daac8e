/*


Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controllers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	pipelinev1 "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1beta1"
	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	pollingv1alpha1 "github.com/bigkevmcd/store-polling-operator/api/v1alpha1"
	"github.com/bigkevmcd/store-polling-operator/pkg/cel"
	"github.com/bigkevmcd/store-polling-operator/pkg/command"
	"github.com/bigkevmcd/store-polling-operator/pkg/pipelines"
	"github.com/bigkevmcd/store-polling-operator/pkg/polling"
	"github.com/bigkevmcd/store-polling-operator/pkg/revision"
	"github.com/bigkevmcd/store-polling-operator/pkg/secrets"
	"github.com/bigkevmcd/store-polling-operator/pkg/store"
)

// AuthTokenEnv is the environment variable the query script receives the
// credential from the auth secret in.
const AuthTokenEnv = "STORE_AUTH_TOKEN"

const defaultSecretKey = "token"

// RunnerFactory creates a Runner for the query script, with extra environment
// variables for the script.
type RunnerFactory func(logger logr.Logger, env []string) command.Runner

// ExecRunnerFactory returns a RunnerFactory that runs the script as a local
// process.
func ExecRunnerFactory(timeout time.Duration, workDir string) RunnerFactory {
	return func(logger logr.Logger, env []string) command.Runner {
		return command.NewExecRunner(logger,
			command.WithTimeout(timeout),
			command.WithWorkDir(workDir),
			command.WithEnv(env...))
	}
}

// StoreRepositoryReconciler reconciles a StoreRepository object
type StoreRepositoryReconciler struct {
	client.Client
	Log    logr.Logger
	Scheme *runtime.Scheme
	// Script is the path to the Store query executable.
	Script        string
	RunnerFactory RunnerFactory
	// The pipelineRunner executes the named pipeline with appropriate params.
	PipelineRunner pipelines.PipelineRunner
	SecretGetter   secrets.SecretGetter
}

// +kubebuilder:rbac:groups=polling.tekton.dev,resources=storerepositories,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=polling.tekton.dev,resources=storerepositories/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=tekton.dev,resources=pipelineruns,verbs=create
// +kubebuilder:rbac:groups="",resources=secrets,verbs=get

func (r *StoreRepositoryReconciler) Reconcile(req ctrl.Request) (ctrl.Result, error) {
	ctx := context.Background()
	reqLogger := r.Log.WithValues("storerepository", req.NamespacedName)

	repo := &pollingv1alpha1.StoreRepository{}
	err := r.Client.Get(ctx, req.NamespacedName, repo)
	if err != nil {
		if errors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	spec := repo.Spec.RepositorySpec()
	if err := spec.Validate(); err != nil {
		reqLogger.Error(err, "Invalid StoreRepository, requeueing next check", "frequency", repo.GetFrequency())
		r.updateLastError(ctx, reqLogger, repo, err)
		return ctrl.Result{RequeueAfter: repo.GetFrequency()}, nil
	}

	env, err := r.authEnvForRepo(ctx, reqLogger, req.Namespace, repo)
	if err != nil {
		r.updateLastError(ctx, reqLogger, repo, err)
		return ctrl.Result{}, err
	}

	poller := polling.New(r.RunnerFactory(reqLogger, env), reqLogger)
	result, err := poller.Poll(ctx, spec, repo.Status.Baseline, r.Script)
	if err != nil {
		reqLogger.Error(err, "Repository poll failed")
		r.updateLastError(ctx, reqLogger, repo, err)
		return ctrl.Result{}, err
	}

	if !result.BuildRequired() {
		if repo.Status.LastError != "" {
			repo.Status.LastError = ""
			if err := r.Client.Status().Update(ctx, repo); err != nil {
				reqLogger.Error(err, "unable to update StoreRepository status")
				return ctrl.Result{}, err
			}
		}
		reqLogger.Info("Store repository unchanged, requeueing next check", "frequency", repo.GetFrequency())
		return ctrl.Result{RequeueAfter: repo.GetFrequency()}, nil
	}

	current := result.Current
	if result.Change == polling.BuildNow {
		current, err = poller.Snapshot(ctx, spec, r.Script)
		if err != nil {
			reqLogger.Error(err, "Recording the baseline failed, starting from an empty baseline")
			current = revision.Parse("")
		}
	}
	reqLogger.Info("Store repository changed", "change", result.Change.String(), "digest", current.Digest)

	params, err := makeParams(repo, spec, result, current)
	if err != nil {
		reqLogger.Error(err, "failed to evaluate the pipeline params", "pipelineName", repo.Spec.Pipeline.Name)
		r.updateLastError(ctx, reqLogger, repo, err)
		return ctrl.Result{}, err
	}
	labels := map[string]string{pipelines.RepositoryLabel: repo.Name}
	pr, err := r.PipelineRunner.Run(ctx, repo.Spec.Pipeline.Name, req.Namespace, repo.Spec.Pipeline.ServiceAccountName, params, labels)
	if err != nil {
		reqLogger.Error(err, "failed to create a PipelineRun", "pipelineName", repo.Spec.Pipeline.Name)
		r.updateLastError(ctx, reqLogger, repo, err)
		return ctrl.Result{}, err
	}
	reqLogger.Info("PipelineRun created", "name", pr.ObjectMeta.Name)

	repo.Status.Baseline = current
	repo.Status.LastPipelineRun = pr.ObjectMeta.Name
	repo.Status.LastError = ""
	if err := r.Client.Status().Update(ctx, repo); err != nil {
		reqLogger.Error(err, "unable to update StoreRepository status")
		return ctrl.Result{}, err
	}
	reqLogger.Info("Requeueing next check", "frequency", repo.GetFrequency())
	return ctrl.Result{RequeueAfter: repo.GetFrequency()}, nil
}

func (r *StoreRepositoryReconciler) updateLastError(ctx context.Context, logger logr.Logger, repo *pollingv1alpha1.StoreRepository, err error) {
	repo.Status.LastError = err.Error()
	if err := r.Client.Status().Update(ctx, repo); err != nil {
		logger.Error(err, "unable to update StoreRepository status")
	}
}

func (r *StoreRepositoryReconciler) authEnvForRepo(ctx context.Context, logger logr.Logger, namespace string, repo *pollingv1alpha1.StoreRepository) ([]string, error) {
	if repo.Spec.Auth == nil {
		return nil, nil
	}
	key := defaultSecretKey
	if repo.Spec.Auth.Key != "" {
		key = repo.Spec.Auth.Key
	}
	authToken, err := r.SecretGetter.SecretToken(ctx, types.NamespacedName{Name: repo.Spec.Auth.Name, Namespace: namespace}, key)
	if err != nil {
		logger.Error(err, "Getting the auth token failed", "name", repo.Spec.Auth.Name, "namespace", namespace, "key", key)
		return nil, err
	}
	return []string{AuthTokenEnv + "=" + authToken}, nil
}

// pollContext is exposed to the param expressions as "context".
type pollContext struct {
	Repository store.RepositorySpec `json:"repository"`
	Change     string               `json:"change"`
	Baseline   *revision.State      `json:"baseline"`
	Current    *revision.State      `json:"current"`
	Changes    []revision.Change    `json:"changes"`
	Pundles    []string             `json:"pundles"`
}

func makeParams(repo *pollingv1alpha1.StoreRepository, spec store.RepositorySpec, result polling.Result, current *revision.State) ([]pipelinev1.Param, error) {
	params := []pipelinev1.Param{}
	if len(repo.Spec.Pipeline.Params) == 0 {
		return params, nil
	}
	changes := result.Changes()
	if changes == nil {
		changes = []revision.Change{}
	}
	ectx, err := cel.New(spec.RepositoryName, pollContext{
		Repository: spec,
		Change:     result.Change.String(),
		Baseline:   result.Baseline,
		Current:    current,
		Changes:    changes,
		Pundles:    current.Pundles(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create the expression context: %w", err)
	}
	for _, p := range repo.Spec.Pipeline.Params {
		v, err := ectx.EvaluateToParamValue(p.Expression)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate param %s: %w", p.Name, err)
		}
		params = append(params, pipelinev1.Param{Name: p.Name, Value: v})
	}
	return params, nil
}

func (r *StoreRepositoryReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&pollingv1alpha1.StoreRepository{}).
		Complete(r)
}
