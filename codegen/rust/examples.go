package rust

import (
	"fmt"
	"strings"

	"github.com/clientforge/forge/codegen"
	"github.com/clientforge/forge/ir"
)

// GenerateExample renders examples/<op>.rs: construct the client, call the
// operation with placeholder arguments, print the result.
func GenerateExample(spec *ir.Spec, op ir.Operation, cfg codegen.Config) string {
	var sb strings.Builder

	sb.WriteString("//! Example: " + op.Name + "\n")
	if op.Summary != "" {
		sb.WriteString("//! " + op.Summary + "\n")
	}
	sb.WriteString("//! Generated by forge. Do not edit manually.\n\n")
	sb.WriteString(fmt.Sprintf("use %s::%s;\n\n", CrateName(cfg), ClientName(cfg)))

	sb.WriteString("#[tokio::main]\n")
	sb.WriteString("async fn main() {\n")
	sb.WriteString(fmt.Sprintf("    let client = %s::new();\n", ClientName(cfg)))

	var args []string
	for _, p := range op.Params {
		if p.Required {
			args = append(args, sampleValue(p.Type))
		} else {
			args = append(args, "None")
		}
	}
	if op.Request != nil {
		sb.WriteString("    let body = serde_json::from_value(serde_json::json!({})).unwrap();\n")
		args = append(args, "&body")
	}

	sb.WriteString(fmt.Sprintf("    let response = client.%s(%s).await.unwrap();\n", op.Name, strings.Join(args, ", ")))
	sb.WriteString("    println!(\"{:#?}\", response);\n")
	sb.WriteString("}\n")
	return sb.String()
}

// sampleValue renders a placeholder Rust expression for a required argument.
func sampleValue(t ir.Type) string {
	switch t.Kind {
	case ir.KindString:
		return `"your value".to_string()`
	case ir.KindInt:
		return "1"
	case ir.KindFloat:
		return "1.0"
	case ir.KindBool:
		return "true"
	case ir.KindArray:
		return "vec![]"
	default:
		return "serde_json::from_value(serde_json::json!({})).unwrap()"
	}
}
