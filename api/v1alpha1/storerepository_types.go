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

package v1alpha1

import (
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/bigkevmcd/store-polling-operator/pkg/revision"
	"github.com/bigkevmcd/store-polling-operator/pkg/store"
)

// StoreRepositorySpec defines a Store repository to poll.
type StoreRepositorySpec struct {
	RepositoryName       string           `json:"repositoryName"`
	Pundles              []PundleSpec     `json:"pundles,omitempty"`
	VersionRegex         string           `json:"versionRegex,omitempty"`
	MinimumBlessingLevel string           `json:"minimumBlessingLevel,omitempty"`
	Frequency            *metav1.Duration `json:"frequency,omitempty"`
	Pipeline             PipelineRef      `json:"pipelineRef"`
	Auth                 *AuthSecret      `json:"auth,omitempty"`
}

// PundleSpec is a package or bundle to query.
type PundleSpec struct {
	Name string `json:"name"`
}

// PipelineRef links to the Pipeline to execute.
type PipelineRef struct {
	Name               string  `json:"name"`
	ServiceAccountName string  `json:"serviceAccountName,omitempty"`
	Params             []Param `json:"params,omitempty"`
}

// Param declares a PipelineRun parameter as a CEL expression.
type Param struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
}

// AuthSecret references a secret with the credential for the query script.
type AuthSecret struct {
	corev1.SecretReference `json:"secretRef,omitempty"`
	Key                    string `json:"key,omitempty"`
}

// StoreRepositoryStatus defines the observed state of StoreRepository
type StoreRepositoryStatus struct {
	LastError string `json:"lastError,omitempty"`
	// Baseline is the repository state when the last PipelineRun was created.
	Baseline        *revision.State `json:"baseline,omitempty"`
	LastPipelineRun string          `json:"lastPipelineRun,omitempty"`
}

// +kubebuilder:object:root=true

// StoreRepository is the Schema for the storerepositories API
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=storerepositories,scope=Namespaced
type StoreRepository struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   StoreRepositorySpec   `json:"spec,omitempty"`
	Status StoreRepositoryStatus `json:"status,omitempty"`
}

// GetFrequency returns the configured delay between polls.
func (r *StoreRepository) GetFrequency() time.Duration {
	if r.Spec.Frequency != nil {
		return r.Spec.Frequency.Duration
	}
	return time.Second * 30
}

// RepositorySpec returns the query for this repository, with defaults
// applied.
func (s StoreRepositorySpec) RepositorySpec() store.RepositorySpec {
	pundles := make([]store.PundleSpec, len(s.Pundles))
	for i, p := range s.Pundles {
		pundles[i] = store.PundleSpec{Name: p.Name}
	}
	return store.RepositorySpec{
		RepositoryName:       s.RepositoryName,
		Pundles:              pundles,
		VersionRegex:         s.VersionRegex,
		MinimumBlessingLevel: s.MinimumBlessingLevel,
	}.WithDefaults()
}

// +kubebuilder:object:root=true

// StoreRepositoryList contains a list of StoreRepository
type StoreRepositoryList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []StoreRepository `json:"items"`
}

func init() {
	SchemeBuilder.Register(&StoreRepository{}, &StoreRepositoryList{})
}
