// Package permission writes relation tuples to the external
// relation-based permission store. The core never evaluates
// permissions locally; it only keeps the store's projection of
// resource ownership in sync on create and delete.
package permission

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"beatstream-go/internal/config"
)

// Object identifies a resource or subject in the relation store.
type Object struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Tuple is one (resource, relation, subject, subject_relation?) record.
type Tuple struct {
	Resource        Object  `json:"resource"`
	Relation        string  `json:"relation,omitempty"`
	Subject         *Object `json:"subject,omitempty"`
	SubjectRelation string  `json:"subject_relation,omitempty"`
}

// Client is a thin JSON-over-HTTP writer for the relation store.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient builds a client from config. TLS verification can be
// disabled for self-hosted deployments behind internal CAs.
func NewClient(cfg *config.PermissionConfig) *Client {
	transport := http.DefaultTransport
	if cfg.InsecureSkipVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.TimeoutDuration(),
			Transport: transport,
		},
		baseURL: cfg.URL,
		token:   cfg.Token,
	}
}

// Write upserts one relation tuple. PUT gives replace semantics, so a
// retried call after a partial failure is a no-op.
func (c *Client) Write(ctx context.Context, resource Object, relation string, subject Object, subjectRelation string) error {
	t := Tuple{
		Resource:        resource,
		Relation:        relation,
		Subject:         &subject,
		SubjectRelation: subjectRelation,
	}
	return c.do(ctx, http.MethodPut, t)
}

// Delete removes tuples matching the given resource and optional
// relation/subject. Deleting an absent tuple is not an error.
func (c *Client) Delete(ctx context.Context, resource Object, relation string, subject *Object, subjectRelation string) error {
	t := Tuple{
		Resource:        resource,
		Relation:        relation,
		Subject:         subject,
		SubjectRelation: subjectRelation,
	}
	return c.do(ctx, http.MethodDelete, t)
}

func (c *Client) do(ctx context.Context, method string, t Tuple) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal relation tuple: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/relation-tuples", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build permission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("permission service unreachable: %w", err)
	}
	defer resp.Body.Close()

	// An absent tuple on delete means the store already converged.
	if method == http.MethodDelete && resp.StatusCode == http.StatusNotFound {
		return nil
	}

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("permission service returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
