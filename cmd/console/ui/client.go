package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"droidsweep/backend/app/cmdlog"
)

// Client wraps the console HTTP API for the TUI.
type Client struct {
	BaseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, http: &http.Client{Timeout: 30 * time.Second}}
}

type DeviceEntry struct {
	UUID           string `json:"UUID"`
	Name           string `json:"Name"`
	Model          string `json:"Model"`
	AndroidVersion string `json:"AndroidVersion"`
}

type LogResponse struct {
	Entries       []cmdlog.Entry `json:"entries"`
	TotalCommands uint64         `json:"total_commands"`
	Hidden        int            `json:"hidden"`
}

type CommandResponse struct {
	Accepted bool   `json:"accepted"`
	Command  string `json:"command"`
	Reason   string `json:"reason"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exit_code"`
}

func (c *Client) getJSON(path string, out any) error {
	resp, err := c.http.Get(c.BaseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.BaseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("POST %s: status %d", path, resp.StatusCode)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Devices() ([]DeviceEntry, error) {
	var out []DeviceEntry
	err := c.getJSON("/devices", &out)
	return out, err
}

func (c *Client) Run(command string) (CommandResponse, error) {
	var out CommandResponse
	err := c.postJSON("/terminal/command", map[string]string{"command": command}, &out)
	return out, err
}

func (c *Client) Log() (LogResponse, error) {
	var out LogResponse
	err := c.getJSON("/log", &out)
	return out, err
}

func (c *Client) ClearLog() error {
	return c.postJSON("/log/clear", struct{}{}, nil)
}

// DownloadLog saves the full retained history next to the working directory
// and returns the file path.
func (c *Client) DownloadLog() (string, error) {
	resp, err := c.http.Get(c.BaseURL + "/log/download")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	path := fmt.Sprintf("command-log-%s.ndjson", time.Now().Format("20060102-150405"))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", err
	}
	return path, nil
}
