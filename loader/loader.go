package loader

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/apimodel/model"
	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"
)

// Loader rebuilds API trees from versioned JSON documents
type Loader struct {
	config *Config
	fs     afs.Service
}

// New creates a loader
func New(options ...Option) *Loader {
	ret := &Loader{config: DefaultConfig()}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

// Load loads a single package document into a new model
func Load(ctx context.Context, data []byte, options ...Option) (*model.Model, error) {
	return New(options...).Load(ctx, data)
}

// Load loads a single package document into a new model
func (l *Loader) Load(ctx context.Context, data []byte) (*model.Model, error) {
	pkg, err := l.LoadPackage(ctx, data)
	if err != nil {
		return nil, err
	}
	ret := model.New()
	if err = ret.AddPackage(pkg); err != nil {
		return nil, err
	}
	return ret, nil
}

// LoadURL downloads and loads a package document
func (l *Loader) LoadURL(ctx context.Context, URL string) (*model.Package, error) {
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Errorf("failed to download %v: %w", URL, err)
	}
	ctx = slogctx.With(ctx, slog.String("url", URL))
	return l.LoadPackage(ctx, data)
}

// LoadModel loads package documents into one model, package names must be unique
func (l *Loader) LoadModel(ctx context.Context, URLs ...string) (*model.Model, error) {
	ret := model.New()
	for _, URL := range URLs {
		pkg, err := l.LoadURL(ctx, URL)
		if err != nil {
			return nil, err
		}
		if err = ret.AddPackage(pkg); err != nil {
			return nil, errors.Errorf("failed to add package from %v: %w", URL, err)
		}
	}
	return ret, nil
}

// LoadPackage converts a document into a package tree, no partial tree is returned on error
func (l *Loader) LoadPackage(ctx context.Context, data []byte) (*model.Package, error) {
	var document object
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, corrupt("", "invalid JSON: %v", err)
	}
	raw, ok := document["metadata"]
	if !ok {
		return nil, corrupt("", "missing metadata")
	}
	metadata := &Metadata{}
	if err := json.Unmarshal(raw, metadata); err != nil {
		return nil, corrupt("metadata", "%v", err)
	}
	version, err := checkVersion(ctx, metadata)
	if err != nil {
		return nil, err
	}
	checkToolVersion(ctx, metadata, l.config.ToolVersion)

	d := &decoder{ctx: ctx, version: version, config: l.config, stored: map[model.Item]string{}}
	pkg, err := d.decodePackage(document, metadata)
	if err != nil {
		return nil, err
	}
	if err = d.verifyReferences(pkg); err != nil {
		return nil, err
	}
	digest, _ := model.Hash(data)
	slogctx.Debug(ctx, "loaded package",
		"package", pkg.Name,
		"schemaVersion", metadata.SchemaVersion,
		"items", d.items,
		"digest", digest)
	return pkg, nil
}

// verifyReferences checks canonical reference uniqueness and compares them with references stored by the producer
func (d *decoder) verifyReferences(pkg *model.Package) error {
	seen := map[string]model.Item{}
	var err error
	model.Walk(pkg, func(item model.Item) bool {
		if entryPoint, ok := item.(*model.EntryPoint); ok && entryPoint.Name == "" {
			return true
		}
		var ref string
		if ref, err = model.CanonicalReference(item); err != nil {
			err = corrupt(item.ContainerKey(), "%v", err)
			return false
		}
		if prev, ok := seen[ref]; ok {
			if d.config.Strict {
				err = corrupt(ref, "duplicate canonical reference for %v and %v", prev.ContainerKey(), item.ContainerKey())
				return false
			}
			slogctx.Warn(d.ctx, "duplicate canonical reference",
				"reference", ref, "first", prev.ContainerKey(), "second", item.ContainerKey())
		} else {
			seen[ref] = item
		}
		if stored := d.stored[item]; stored != "" && stored != ref {
			slogctx.Warn(d.ctx, "stored canonical reference differs", "stored", stored, "computed", ref)
		}
		return true
	})
	return err
}
