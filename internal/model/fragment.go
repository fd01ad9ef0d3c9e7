package model

// RecordKind selects which record family a recognizer pass looks for.
type RecordKind string

const (
	KindTrajectory RecordKind = "trajectory"
	KindCasing     RecordKind = "casing"
)

// FragmentMeta carries citation metadata for a text fragment. The pipeline
// treats it as opaque and passes it through unchanged.
type FragmentMeta struct {
	Source string   `json:"source,omitempty" yaml:"source"`
	Page   int      `json:"page,omitempty" yaml:"page"`
	Wells  []string `json:"wells,omitempty" yaml:"wells"`
}

// Fragment is one pre-segmented piece of report text, already selected as
// relevant by the upstream retrieval collaborator.
type Fragment struct {
	Text string       `json:"text" yaml:"text"`
	Meta FragmentMeta `json:"meta,omitempty" yaml:"meta"`
}

// FragmentBundle is the on-disk input format consumed by the extract and
// batch commands: a well name plus per-kind fragment lists.
type FragmentBundle struct {
	Well       string     `json:"well" yaml:"well"`
	Trajectory []Fragment `json:"trajectory" yaml:"trajectory"`
	Casing     []Fragment `json:"casing" yaml:"casing"`
	// Other holds fragments not pre-classified by kind; they are scanned
	// for pressure, temperature and well names.
	Other []Fragment `json:"other,omitempty" yaml:"other"`
}
