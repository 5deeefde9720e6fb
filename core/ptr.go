package core

// Ptr returns a pointer to v. Option records use pointers for optional
// fields, so Ptr keeps literals short:
//
//	opts := &schematicsv1.ListJobsOptions{Limit: core.Ptr(int64(10))}
func Ptr[T any](v T) *T {
	return &v
}
