// Package mode defines the editor's modal state.
//
// Two orthogonal notions of mode exist:
//
//   - EditingMode: the top-level binding scheme (emacs or vi).
//   - InputMode: within vi, the insert/navigation/replace state.
//
// ViState owns the InputMode value and notifies registered callbacks on
// every set, which is how the cursor-shape side channel observes
// transitions without patching any shared type.
package mode
