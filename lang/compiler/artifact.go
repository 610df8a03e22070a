package compiler

// FormatVersion identifies the artifact layout. Consumers should reject
// versions they do not understand.
const FormatVersion = "1"

// Artifact is the compiled output of one story. It implements
// story.Artifact; the typed program is reachable through GetProgram.
type Artifact struct {
	source  string
	program *Program
}

func newArtifact(source string, program *Program) *Artifact {
	return &Artifact{
		source:  source,
		program: program,
	}
}

// GetSource returns the cleaned source the artifact was compiled from.
func (a *Artifact) GetSource() string {
	return a.source
}

// GetProgram returns the compiled program. Typed as any to keep the
// artifact opaque to the pipeline; callers that need the structure assert
// to *Program.
func (a *Artifact) GetProgram() any {
	return a.program
}

// Program is the structured form of a compiled story: a map of source line
// number (1-based, as written) to the lowered instruction for that line.
type Program struct {
	Version string           `json:"version"              msgpack:"version"`
	Entry   string           `json:"entrypoint,omitempty" msgpack:"entrypoint,omitempty"`
	Modules []string         `json:"modules,omitempty"    msgpack:"modules,omitempty"`
	Lines   map[string]*Line `json:"tree"                 msgpack:"tree"`
}

// Line is one lowered story statement.
type Line struct {
	Method  string   `json:"method"            msgpack:"method"`
	Ln      string   `json:"ln"                msgpack:"ln"`
	Service string   `json:"service,omitempty" msgpack:"service,omitempty"`
	Command string   `json:"command,omitempty" msgpack:"command,omitempty"`
	Module  string   `json:"module,omitempty"  msgpack:"module,omitempty"`
	Output  []string `json:"output,omitempty"  msgpack:"output,omitempty"`
	Args    []*Arg   `json:"args,omitempty"    msgpack:"args,omitempty"`
	Next    string   `json:"next,omitempty"    msgpack:"next,omitempty"`
}

// Arg is a literal, variable reference or raw expression consumed by a
// lowered statement.
type Arg struct {
	Name  string `json:"name,omitempty" msgpack:"name,omitempty"`
	Type  string `json:"type"           msgpack:"type"`
	Value string `json:"value"          msgpack:"value"`
}
