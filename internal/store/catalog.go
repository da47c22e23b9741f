package store

import (
	"fmt"
	"os"

	"github.com/moktak128bit/gagyebu/internal/logging"
	"gopkg.in/yaml.v3"
)

// Account describes one account the ledger can reference.
type Account struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Type     string `yaml:"type"` // bank, card, cash
	Currency string `yaml:"currency,omitempty"`
}

// CategoryConfig describes one category and its sub-categories as configured
// by the user. The catalog is advisory: entries may reference categories
// outside it, and the report command flags them instead of rejecting them.
type CategoryConfig struct {
	Name          string   `yaml:"name"`
	Kind          string   `yaml:"kind,omitempty"`
	SubCategories []string `yaml:"subcategories,omitempty"`
}

type catalogFile struct {
	Accounts   []Account        `yaml:"accounts"`
	Categories []CategoryConfig `yaml:"categories"`
}

// Catalog is the YAML-backed account and category configuration.
type Catalog struct {
	path   string
	logger logging.Logger
}

// NewCatalog creates a Catalog reading from the given YAML path.
func NewCatalog(path string, logger logging.Logger) *Catalog {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Catalog{path: path, logger: logger}
}

func (c *Catalog) load() (*catalogFile, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &catalogFile{}, nil
		}
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing catalog %s: %w", c.path, err)
	}
	return &file, nil
}

// LoadAccounts returns the configured accounts.
func (c *Catalog) LoadAccounts() ([]Account, error) {
	file, err := c.load()
	if err != nil {
		return nil, err
	}
	return file.Accounts, nil
}

// LoadCategories returns the configured categories.
func (c *Catalog) LoadCategories() ([]CategoryConfig, error) {
	file, err := c.load()
	if err != nil {
		return nil, err
	}
	return file.Categories, nil
}

// AccountName resolves an account id to its display name, falling back to
// the id itself for accounts missing from the catalog.
func (c *Catalog) AccountName(id string) string {
	if id == "" {
		return ""
	}
	accounts, err := c.LoadAccounts()
	if err != nil {
		c.logger.WithError(err).Warn("Failed to load accounts")
		return id
	}
	for _, account := range accounts {
		if account.ID == id {
			return account.Name
		}
	}
	return id
}
