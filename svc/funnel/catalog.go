package funnel

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed funnels.yaml
var defaultCatalog []byte

// Config selects the funnel catalog file.
type Config struct {
	File string `env:"FUNNELS_FILE"`
}

// Catalog is the set of funnels served by the site, in file order.
type Catalog struct {
	funnels []*Funnel
	byName  map[string]*Funnel
}

type catalogFile struct {
	Funnels []*Funnel `yaml:"funnels"`
}

// Load reads the catalog from cfg.File, or the built-in catalog when unset.
func Load(cfg Config) (*Catalog, error) {
	if cfg.File == "" {
		return Parse(defaultCatalog)
	}
	data, err := os.ReadFile(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalog, err)
	}
	return Parse(data)
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalog, err)
	}
	if len(file.Funnels) == 0 {
		return nil, fmt.Errorf("%w: no funnels defined", ErrCatalog)
	}

	c := &Catalog{byName: make(map[string]*Funnel, len(file.Funnels))}
	for _, f := range file.Funnels {
		if err := normalize(f); err != nil {
			return nil, err
		}
		if _, dup := c.byName[f.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate funnel %q", ErrCatalog, f.Name)
		}
		c.byName[f.Name] = f
		c.funnels = append(c.funnels, f)
	}
	return c, nil
}

func normalize(f *Funnel) error {
	f.Name = strings.ToLower(strings.TrimSpace(f.Name))
	if f.Name == "" {
		return fmt.Errorf("%w: funnel without name", ErrCatalog)
	}
	if f.Endpoint == "" {
		f.Endpoint = f.Name + "/registration"
	}
	for _, wire := range f.Fields.All() {
		if wire == "" {
			return fmt.Errorf("%w: funnel %q: every field needs a wire name", ErrCatalog, f.Name)
		}
	}
	f.Messages = f.Messages.withDefaults()

	switch f.Completion.Kind {
	case "":
		f.Completion.Kind = CompleteWithMessage
	case CompleteWithMessage:
	case CompleteWithRedirect:
		if f.Completion.RedirectURL == "" {
			return fmt.Errorf("%w: funnel %q: redirect completion without redirect_url", ErrCatalog, f.Name)
		}
	default:
		return fmt.Errorf("%w: funnel %q: unknown completion kind %q", ErrCatalog, f.Name, f.Completion.Kind)
	}
	return nil
}

// Get returns the named funnel.
func (c *Catalog) Get(name string) (*Funnel, bool) {
	f, ok := c.byName[strings.ToLower(name)]
	return f, ok
}

// All returns the funnels in catalog order.
func (c *Catalog) All() []*Funnel {
	out := make([]*Funnel, len(c.funnels))
	copy(out, c.funnels)
	return out
}
