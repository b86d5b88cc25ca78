package service

// CodeGenerator produces one-time passcodes for the share gate.
type CodeGenerator interface {
	// Generate returns a uniformly random 6-digit decimal string (100000-999999).
	Generate() (string, error)
}
