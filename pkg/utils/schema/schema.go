// Package schema 生成配置文件的 JSON Schema
package schema

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
	"github.com/yeisme/fsummary/pkg/configs"
)

// ConfigSchema 反射 configs.Config，字段名取 mapstructure 标签
func ConfigSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "mapstructure",
	}
	s := reflector.Reflect(configs.Config{})
	s.Title = "fsummary configuration"
	return s
}

// GenConfigSchema 将配置 Schema 以缩进 JSON 写入 out
func GenConfigSchema(out io.Writer) error {
	schemaJSON, err := json.MarshalIndent(ConfigSchema(), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(schemaJSON))
	return err
}
