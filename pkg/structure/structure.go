// Package structure defines the class outline produced by the extractor.
package structure

type FieldInfo struct {
	Type string
	Name string
}

type Parameter struct {
	Type string
	Name string
}

type MethodInfo struct {
	Name       string
	Parameters []Parameter
}

type ClassStructure struct {
	Name    string
	Fields  []FieldInfo
	Methods []MethodInfo
}

// Result is the outcome of extracting one file.
// Either Classes is set or Message describes why the file could not be parsed.
type Result struct {
	Path    string
	Classes []ClassStructure
	Message string
	failed  bool
}

func Success(path string, classes []ClassStructure) *Result {
	if classes == nil {
		classes = []ClassStructure{}
	}
	return &Result{
		Path:    path,
		Classes: classes,
	}
}

func Failure(path, message string) *Result {
	return &Result{
		Path:    path,
		Message: message,
		failed:  true,
	}
}

func (r *Result) Failed() bool {
	return r.failed
}
