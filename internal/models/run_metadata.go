package models

// RunMetadata describes where and how the analysed log was produced.
type RunMetadata struct {
	Server  string `validate:"required,max=255,logtoken"`
	IsClean bool
	Commit  string `validate:"max=128,logtoken"`
}
