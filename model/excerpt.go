package model

import (
	"strings"

	"github.com/minio/highwayhash"
	"gitlab.com/tozd/go/errors"
)

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns highwayhash 64 of the data, the key is fixed so digests are stable across processes
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// TokenKind identifies excerpt token variant
type TokenKind string

const (
	TokenContent   TokenKind = "Content"
	TokenReference TokenKind = "Reference"
)

// ExcerptToken is a fragment of declaration text, reference tokens point to another item
type ExcerptToken struct {
	Kind               TokenKind `json:"kind"`
	Text               string    `json:"text"`
	CanonicalReference string    `json:"canonicalReference,omitempty"`
}

// TokenRange is a half open [StartIndex, EndIndex) span over excerpt tokens
type TokenRange struct {
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`
}

// IsEmpty returns true if range spans no token
func (r TokenRange) IsEmpty() bool {
	return r.StartIndex >= r.EndIndex
}

// Validate checks range against token count
func (r TokenRange) Validate(tokens int) error {
	if r.StartIndex < 0 || r.EndIndex < r.StartIndex || r.EndIndex > tokens {
		return errors.Errorf("invalid token range [%d,%d) for %d tokens", r.StartIndex, r.EndIndex, tokens)
	}
	return nil
}

// Excerpt is a span over declaration tokens, the tokens are shared by all excerpts of one item
type Excerpt struct {
	Tokens []ExcerptToken
	Range  TokenRange
}

// NewExcerpt creates an excerpt
func NewExcerpt(tokens []ExcerptToken, tokenRange TokenRange) Excerpt {
	return Excerpt{Tokens: tokens, Range: tokenRange}
}

// IsEmpty returns true if excerpt spans no token
func (e Excerpt) IsEmpty() bool {
	return e.Range.IsEmpty() || e.Range.EndIndex > len(e.Tokens)
}

// SpannedTokens returns tokens within the range
func (e Excerpt) SpannedTokens() []ExcerptToken {
	if e.IsEmpty() || e.Range.StartIndex < 0 {
		return nil
	}
	return e.Tokens[e.Range.StartIndex:e.Range.EndIndex]
}

// Text returns the spanned declaration text
func (e Excerpt) Text() string {
	builder := strings.Builder{}
	for _, token := range e.SpannedTokens() {
		builder.WriteString(token.Text)
	}
	return builder.String()
}

// Hash returns content hash of the spanned text
func (e Excerpt) Hash() uint64 {
	hash, _ := Hash([]byte(e.Text()))
	return hash
}
