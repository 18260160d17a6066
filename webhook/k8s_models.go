package webhook

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// BulkSync is an operator-facing configuration for syncing routes from the store into K8s
type BulkSync struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata"`
	Spec              BulkSyncSpec   `json:"spec"`
	Status            BulkSyncStatus `json:"status,omitempty"`
}

type BulkSyncStatus struct {
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}

type BulkSyncSpec struct {
	Selector Selector `json:"selector"`
	Template Template `json:"template"`
}

type Selector struct {
	MatchLabels map[string]string `json:"matchLabels"`
}

// Template is stamped onto every child resource
type Template struct {
	metav1.ObjectMeta `json:"metadata"`
}

// NamespaceOr returns the template namespace, or fallback when none is set
func (t Template) NamespaceOr(fallback string) string {
	if t.Namespace == "" {
		return fallback
	}
	return t.Namespace
}
