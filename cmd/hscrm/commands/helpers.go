package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hublink-io/hubspot-client/internal/constants"
	"github.com/hublink-io/hubspot-client/pkg/hsclient"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

const timeFormat = "2006-01-02 15:04:05"

// createClient builds a hubspot.Client from the active configuration. The
// token precondition is enforced here so misconfiguration surfaces before
// any command logic runs.
func createClient() (hubspot.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, constants.ErrNoTokenConfigured
	}

	config := &hubspot.Config{
		BaseURL:     viper.GetString("api"),
		AccessToken: token,
		Debug:       viper.GetBool("verbose"),
	}

	if config.Debug {
		config.Logger = newStderrLogger()
	}

	client, err := hsclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// renderOutput writes v as json or yaml per the --output flag, or calls
// tableFn for the default table format.
func renderOutput(v interface{}, tableFn func() error) error {
	switch output := viper.GetString("output"); output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(v)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(v)
	case OutputFormatTable, "":
		return tableFn()
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, output)
	}
}

// renderObjectsTable prints CRM objects with a column per requested
// property, falling back to name-ish defaults.
func renderObjectsTable(objects []hubspot.Object, properties []string) error {
	if len(objects) == 0 {
		fmt.Println("No records found")

		return nil
	}

	if len(properties) == 0 {
		properties = defaultColumns(objects)
	}

	header := append([]string{"ID"}, properties...)
	header = append(header, "Created", "Updated")

	table := tablewriter.NewWriter(os.Stdout)
	table.Header(toAnySlice(header)...)

	for _, obj := range objects {
		row := []string{obj.ID}
		for _, prop := range properties {
			row = append(row, obj.Properties[prop])
		}

		created := ""
		if !obj.CreatedAt.IsZero() {
			created = obj.CreatedAt.Format(timeFormat)
		}

		updated := ""
		if !obj.UpdatedAt.IsZero() {
			updated = obj.UpdatedAt.Format(timeFormat)
		}

		row = append(row, created, updated)
		_ = table.Append(toAnySlice(row)...)
	}

	return table.Render()
}

// defaultColumns picks the property columns to show when the caller didn't
// ask for specific ones: the union is too wide, so use the first object's
// keys in sorted-ish insertion order, capped.
func defaultColumns(objects []hubspot.Object) []string {
	const maxColumns = 4

	var columns []string

	for _, candidate := range []string{"dealname", "firstname", "lastname", "name", "email", "hs_note_body", "amount", "dealstage"} {
		if _, ok := objects[0].Properties[candidate]; ok {
			columns = append(columns, candidate)
			if len(columns) == maxColumns {
				break
			}
		}
	}

	if len(columns) == 0 {
		for key := range objects[0].Properties {
			columns = append(columns, key)
			if len(columns) == maxColumns {
				break
			}
		}
	}

	return columns
}

func toAnySlice(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}

	return out
}

// parseProperties parses key=value pairs into a property map.
func parseProperties(pairs []string) (map[string]string, error) {
	props := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidProperties, pair)
		}

		props[key] = value
	}

	return props, nil
}

// stderrLogger writes debug traces to stderr so they never mix with
// command output on stdout.
type stderrLogger struct{}

func newStderrLogger() *stderrLogger {
	return &stderrLogger{}
}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }
