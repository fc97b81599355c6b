package config

import "fmt"

// ExportConfig selects the default output format of the layout command.
type ExportConfig struct {
	Format string `json:"format"`
}

func (c *ExportConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "json"
	}
}

func (c ExportConfig) Validate() error {
	switch c.Format {
	case "json", "csv":
		return nil
	default:
		return fmt.Errorf("unsupported export format %q", c.Format)
	}
}
