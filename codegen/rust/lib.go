package rust

import (
	"fmt"
	"strings"

	"github.com/clientforge/forge/codegen"
	"github.com/clientforge/forge/internal/util"
	"github.com/clientforge/forge/ir"
)

// httpMethodCall maps HTTP methods to reqwest builder helpers.
var httpMethodCall = map[string]string{
	"GET":    "get",
	"POST":   "post",
	"PUT":    "put",
	"DELETE": "delete",
	"PATCH":  "patch",
	"HEAD":   "head",
}

// ClientName derives the client struct name from the canonical service name.
func ClientName(cfg codegen.Config) string {
	return cfg.Name + "Client"
}

// GenerateLibRs renders src/lib.rs: the client struct and one async method
// per operation.
func GenerateLibRs(spec *ir.Spec, cfg codegen.Config) string {
	client := ClientName(cfg)
	baseURL := "http://localhost"
	if len(spec.Servers) > 0 {
		baseURL = spec.Servers[0]
	}

	var sb strings.Builder
	sb.WriteString("//! Client for the " + cfg.Name + " API.\n")
	sb.WriteString("//! Generated by forge. Do not edit manually.\n\n")
	sb.WriteString("pub mod model;\npub use model::*;\n\n")

	sb.WriteString("pub struct " + client + " {\n")
	sb.WriteString("    pub base_url: String,\n")
	sb.WriteString("    client: reqwest::Client,\n")
	sb.WriteString("}\n\n")

	sb.WriteString("impl " + client + " {\n")
	sb.WriteString("    pub fn new() -> Self {\n")
	sb.WriteString(fmt.Sprintf("        Self::with_base_url(%q)\n", baseURL))
	sb.WriteString("    }\n\n")
	sb.WriteString("    pub fn with_base_url(base_url: &str) -> Self {\n")
	sb.WriteString("        Self {\n")
	sb.WriteString("            base_url: base_url.to_string(),\n")
	sb.WriteString("            client: reqwest::Client::new(),\n")
	sb.WriteString("        }\n")
	sb.WriteString("    }\n")

	for _, op := range spec.Operations {
		sb.WriteString("\n")
		sb.WriteString(generateMethod(op))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// generateMethod renders one operation as an async client method.
func generateMethod(op ir.Operation) string {
	var sb strings.Builder

	if op.Summary != "" {
		sb.WriteString("    /// " + op.Summary + "\n")
	}

	args := []string{"&self"}
	for _, p := range op.Params {
		argType := RustType(p.Type)
		if !p.Required {
			argType = "Option<" + argType + ">"
		}
		args = append(args, fmt.Sprintf("%s: %s", util.ToSnakeCase(p.Name), argType))
	}
	if op.Request != nil {
		args = append(args, "body: &"+RustType(*op.Request))
	}

	returnType := "()"
	if op.Response != nil {
		returnType = RustType(*op.Response)
	}

	sb.WriteString(fmt.Sprintf("    pub async fn %s(%s) -> Result<%s, reqwest::Error> {\n",
		op.Name, strings.Join(args, ", "), returnType))

	sb.WriteString("        let url = format!(" + pathFormat(op) + ");\n")

	// only emit `mut` when the builder is actually reassigned, so the
	// generated crate compiles without unused_mut warnings
	binding := "let req"
	if op.Request != nil || hasParamIn(op, "query") || hasParamIn(op, "header") {
		binding = "let mut req"
	}
	if call, ok := httpMethodCall[op.Method]; ok {
		sb.WriteString(fmt.Sprintf("        %s = self.client.%s(&url);\n", binding, call))
	} else {
		sb.WriteString(fmt.Sprintf("        %s = self.client.request(reqwest::Method::from_bytes(b%q).unwrap(), &url);\n", binding, op.Method))
	}

	for _, p := range op.Params {
		name := util.ToSnakeCase(p.Name)
		switch p.In {
		case "query":
			if p.Required {
				sb.WriteString(fmt.Sprintf("        req = req.query(&[(%q, &%s)]);\n", p.Name, name))
			} else {
				sb.WriteString(fmt.Sprintf("        if let Some(%s) = %s {\n", name, name))
				sb.WriteString(fmt.Sprintf("            req = req.query(&[(%q, &%s)]);\n", p.Name, name))
				sb.WriteString("        }\n")
			}
		case "header":
			if p.Required {
				sb.WriteString(fmt.Sprintf("        req = req.header(%q, format!(\"{}\", %s));\n", p.Name, name))
			} else {
				sb.WriteString(fmt.Sprintf("        if let Some(%s) = %s {\n", name, name))
				sb.WriteString(fmt.Sprintf("            req = req.header(%q, format!(\"{}\", %s));\n", p.Name, name))
				sb.WriteString("        }\n")
			}
		}
	}

	if op.Request != nil {
		sb.WriteString("        req = req.json(body);\n")
	}

	sb.WriteString("        let res = req.send().await?.error_for_status()?;\n")
	if op.Response != nil {
		sb.WriteString("        res.json().await\n")
	} else {
		sb.WriteString("        drop(res);\n")
		sb.WriteString("        Ok(())\n")
	}
	sb.WriteString("    }\n")
	return sb.String()
}

func hasParamIn(op ir.Operation, in string) bool {
	for _, p := range op.Params {
		if p.In == in {
			return true
		}
	}
	return false
}

// pathFormat turns "/pets/{petId}" into the arguments of a format! call:
// "{}/pets/{}", self.base_url, pet_id
func pathFormat(op ir.Operation) string {
	template := op.Path
	var args []string
	for _, p := range op.Params {
		if p.In != "path" {
			continue
		}
		placeholder := "{" + p.Name + "}"
		if strings.Contains(template, placeholder) {
			template = strings.Replace(template, placeholder, "{}", 1)
			args = append(args, util.ToSnakeCase(p.Name))
		}
	}

	parts := append([]string{fmt.Sprintf("%q", "{}"+template), "self.base_url"}, args...)
	return strings.Join(parts, ", ")
}
