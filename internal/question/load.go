package question

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnexpectedStatus indicates a remote bank answered with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// ErrParse indicates the bank body could not be decoded into records.
var ErrParse = errors.New("parse question bank")

// maxBankSize caps how much of a remote bank is read.
const maxBankSize = 16 << 20

// Load fetches the question bank from a file path or an http(s) URL and
// decodes it into an ordered slice of records. A nil client uses
// http.DefaultClient.
func Load(ctx context.Context, client *http.Client, source string) ([]Record, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, errors.New("question bank source is required")
	}
	data, err := read(ctx, client, source)
	if err != nil {
		return nil, err
	}
	return Parse(data, source)
}

// Parse decodes a question bank body. The source name selects the format:
// .yml and .yaml decode as YAML, anything else as JSON.
func Parse(data []byte, source string) ([]Record, error) {
	if isYAML(source) {
		return parseYAML(data)
	}
	return parseJSON(data)
}

// IsRemote reports whether the source is fetched over HTTP.
func IsRemote(source string) bool {
	lower := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func read(ctx context.Context, client *http.Client, source string) ([]byte, error) {
	if !IsRemote(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read question bank: %w", err)
		}
		return data, nil
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.1")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch question bank: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch question bank: %w: %s", ErrUnexpectedStatus, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBankSize))
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return data, nil
}

func isYAML(source string) bool {
	name := source
	if IsRemote(source) {
		if parsed, err := url.Parse(source); err == nil {
			name = parsed.Path
		}
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		return true
	default:
		return false
	}
}

func parseJSON(data []byte) ([]Record, error) {
	var records []Record
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrParse, err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("%w: json: multiple documents are not supported", ErrParse)
		}
		return nil, fmt.Errorf("%w: json: %v", ErrParse, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: json: expected a list of questions", ErrParse)
	}
	return records, nil
}

func parseYAML(data []byte) ([]Record, error) {
	var records []Record
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ErrParse, err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("%w: yaml: multiple documents are not supported", ErrParse)
		}
		return nil, fmt.Errorf("%w: yaml: %v", ErrParse, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: yaml: expected a list of questions", ErrParse)
	}
	return records, nil
}
