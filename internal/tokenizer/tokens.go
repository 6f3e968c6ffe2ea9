// Package tokenizer provides entity tokenization using Shape's tokenizer
// framework.
package tokenizer

// Token type constants for entity-encoded text. A document is a flat
// sequence of literal text runs and '&'-to-';' reference tokens.
const (
	TokenText          = "Text"          // literal run with no '&'
	TokenNamedEntity   = "NamedEntity"   // &lt; &amp; ...
	TokenNumericEntity = "NumericEntity" // &#60; &#x3c; &#X3C;
	TokenAmp           = "Amp"           // '&' that opens no well-formed token
	TokenEOF           = "EOF"           // end of input
)
