package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ClientScriptPath is the src of the client script tag, relative to index.html.
const ClientScriptPath = "./index.js"

// ShellData is the site data embedded into the HTML shell.
type ShellData struct {
	Config   any // exposed as window.__config
	Catalogs any // exposed as window.__catalogs
}

// InjectShell inserts the site data and the client script tag into the shell
// template, immediately before the last </body>. Without a </body> tag the
// block is appended.
//
// Values are JSON encoded with HTML escaping, so document names containing
// "</script>" cannot terminate the inline script.
func InjectShell(shell string, data ShellData) (string, error) {
	block, err := shellBlock(data)
	if err != nil {
		return "", err
	}

	idx := strings.LastIndex(strings.ToLower(shell), "</body>")
	if idx == -1 {
		return shell + block, nil
	}
	return shell[:idx] + block + shell[idx:], nil
}

func shellBlock(data ShellData) (string, error) {
	cfg, err := encodeJSON(data.Config)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	catalogs, err := encodeJSON(data.Catalogs)
	if err != nil {
		return "", fmt.Errorf("encoding catalog: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("<script>window.__config = ")
	sb.Write(cfg)
	sb.WriteString("</script>\n")
	sb.WriteString("<script>window.__catalogs = ")
	sb.Write(catalogs)
	sb.WriteString("</script>\n")
	sb.WriteString(`<script src="` + ClientScriptPath + `"></script>` + "\n")
	return sb.String(), nil
}

// encodeJSON marshals v with <, > and & escaped, without a trailing newline.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
