package main

import (
	"github.com/operator-framework/operator-sdk/pkg/k8sutil"
	"github.com/spf13/cobra"
	pipelinev1 "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1beta1"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"

	pollingv1alpha1 "github.com/bigkevmcd/store-polling-operator/api/v1alpha1"
	"github.com/bigkevmcd/store-polling-operator/controllers"
	"github.com/bigkevmcd/store-polling-operator/pkg/config"
	"github.com/bigkevmcd/store-polling-operator/pkg/pipelines"
	"github.com/bigkevmcd/store-polling-operator/pkg/secrets"
)

func newOperatorCmd(opts *rootOptions) *cobra.Command {
	var metricsAddr string
	var enableLeaderElection bool
	cmd := &cobra.Command{
		Use:   "operator",
		Short: "Poll the StoreRepositories in the cluster and start PipelineRuns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger()
			if err != nil {
				return err
			}
			ctrl.SetLogger(logger)
			setupLog := logger.WithName("setup")

			cfg, err := config.LoadOperator(opts.v, opts.cfgFile)
			if err != nil {
				return err
			}

			scheme := runtime.NewScheme()
			for _, add := range []func(*runtime.Scheme) error{
				clientgoscheme.AddToScheme,
				pollingv1alpha1.AddToScheme,
				pipelinev1.AddToScheme,
			} {
				if err := add(scheme); err != nil {
					return err
				}
			}

			namespace, err := k8sutil.GetWatchNamespace()
			if err != nil {
				setupLog.Info("no watch namespace configured, watching all namespaces")
			}

			mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), ctrl.Options{
				Scheme:             scheme,
				MetricsBindAddress: metricsAddr,
				Port:               9443,
				LeaderElection:     enableLeaderElection,
				LeaderElectionID:   "store-polling-operator.polling.tekton.dev",
				Namespace:          namespace,
			})
			if err != nil {
				setupLog.Error(err, "unable to start manager")
				return err
			}

			if err = (&controllers.StoreRepositoryReconciler{
				Client:         mgr.GetClient(),
				Log:            logger.WithName("controllers").WithName("StoreRepository"),
				Scheme:         mgr.GetScheme(),
				Script:         cfg.Script,
				RunnerFactory:  controllers.ExecRunnerFactory(cfg.Timeout, cfg.WorkDir),
				PipelineRunner: pipelines.NewRunner(mgr.GetClient()),
				SecretGetter:   secrets.New(mgr.GetClient()),
			}).SetupWithManager(mgr); err != nil {
				setupLog.Error(err, "unable to create controller", "controller", "StoreRepository")
				return err
			}

			setupLog.Info("starting manager", "script", cfg.Script, "namespace", namespace)
			if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
				setupLog.Error(err, "problem running manager")
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":8080", "The address the metric endpoint binds to.")
	cmd.Flags().BoolVar(&enableLeaderElection, "enable-leader-election", false,
		"Enable leader election for controller manager. "+
			"Enabling this will ensure there is only one active controller manager.")
	return cmd
}
