package loader

import (
	"encoding/json"

	"github.com/viant/apimodel/model"
)

type object map[string]json.RawMessage

// fields reads members of one document object, the first error is kept and later reads are no-op
type fields struct {
	object object
	path   string
	tokens []model.ExcerptToken
	err    error
}

type parameter struct {
	Name       string           `json:"parameterName"`
	TypeRange  model.TokenRange `json:"parameterTypeTokenRange"`
	IsOptional bool             `json:"isOptional"`
}

type typeParameter struct {
	Name            string           `json:"typeParameterName"`
	ConstraintRange model.TokenRange `json:"constraintTokenRange"`
	DefaultRange    model.TokenRange `json:"defaultTypeTokenRange"`
	IsOptional      bool             `json:"isOptional"`
}

func (f *fields) has(name string) bool {
	raw, ok := f.object[name]
	return ok && string(raw) != "null"
}

func (f *fields) read(name string, target interface{}) bool {
	if f.err != nil || !f.has(name) {
		return false
	}
	if err := json.Unmarshal(f.object[name], target); err != nil {
		f.err = corrupt(f.path, "invalid %v: %v", name, err)
		return false
	}
	return true
}

func (f *fields) string(name string) string {
	var ret string
	f.read(name, &ret)
	return ret
}

func (f *fields) bool(name string) bool {
	var ret bool
	f.read(name, &ret)
	return ret
}

func (f *fields) int(name string, fallback int) int {
	ret := fallback
	f.read(name, &ret)
	return ret
}

func (f *fields) readTokens() {
	var tokens []model.ExcerptToken
	if !f.read("excerptTokens", &tokens) {
		return
	}
	for i, token := range tokens {
		switch token.Kind {
		case model.TokenContent:
		case model.TokenReference:
			if token.CanonicalReference == "" {
				f.err = corrupt(f.path, "reference token %d without canonicalReference", i)
				return
			}
		default:
			f.err = corrupt(f.path, "unknown token kind %q", token.Kind)
			return
		}
	}
	f.tokens = tokens
}

// declare sets attributes shared by every item
func (f *fields) declare(declaration *model.Declaration) {
	declaration.DocComment = f.string("docComment")
	declaration.Excerpt = model.NewExcerpt(f.tokens, model.TokenRange{EndIndex: len(f.tokens)})
}

func (f *fields) tokenRange(name string, tokenRange model.TokenRange) model.Excerpt {
	if f.err != nil {
		return model.Excerpt{}
	}
	if err := tokenRange.Validate(len(f.tokens)); err != nil {
		f.err = corrupt(f.path, "%v: %v", name, err)
		return model.Excerpt{}
	}
	return model.NewExcerpt(f.tokens, tokenRange)
}

// excerpt returns span for the named range field, absent field gives an empty excerpt
func (f *fields) excerpt(name string) model.Excerpt {
	var tokenRange model.TokenRange
	if !f.read(name, &tokenRange) {
		return model.Excerpt{Tokens: f.tokens}
	}
	return f.tokenRange(name, tokenRange)
}

func (f *fields) excerpts(name string) []model.Excerpt {
	var ranges []model.TokenRange
	if !f.read(name, &ranges) {
		return nil
	}
	var ret = make([]model.Excerpt, 0, len(ranges))
	for _, tokenRange := range ranges {
		ret = append(ret, f.tokenRange(name, tokenRange))
	}
	return ret
}

func (f *fields) release() model.ReleaseAttr {
	ret := model.ReleaseAttr{ReleaseTag: model.ReleaseNone}
	if !f.read("releaseTag", &ret.ReleaseTag) {
		return ret
	}
	if !ret.ReleaseTag.IsValid() && f.err == nil {
		f.err = corrupt(f.path, "invalid releaseTag %q", ret.ReleaseTag)
	}
	return ret
}

func (f *fields) static() model.StaticAttr {
	return model.StaticAttr{IsStatic: f.bool("isStatic")}
}

func (f *fields) overload() model.OverloadAttr {
	ret := model.OverloadAttr{OverloadIndex: f.int("overloadIndex", 1)}
	if ret.OverloadIndex < 1 && f.err == nil {
		f.err = corrupt(f.path, "invalid overloadIndex %d", ret.OverloadIndex)
	}
	return ret
}

func (f *fields) returns() model.ReturnTypeAttr {
	return model.ReturnTypeAttr{ReturnType: f.excerpt("returnTypeTokenRange")}
}
