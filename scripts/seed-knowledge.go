//go:build ignore

// Seeds the knowledge base through the admin API.
//
// Usage: go run scripts/seed-knowledge.go <knowledge-file.json>
// Requires API_URL (default http://localhost:8080) and ADMIN_TOKEN.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type KnowledgeFile struct {
	Entries []Entry `json:"entries"`
}

type Entry struct {
	Category string `json:"category"`
	Content  string `json:"content"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/seed-knowledge.go <knowledge-file.json>")
		os.Exit(1)
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}
	token := os.Getenv("ADMIN_TOKEN")
	if token == "" {
		fmt.Println("ADMIN_TOKEN is required")
		os.Exit(1)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("read knowledge file: %v\n", err)
		os.Exit(1)
	}

	var file KnowledgeFile
	if err := json.Unmarshal(raw, &file); err != nil {
		fmt.Printf("parse knowledge file: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: 15 * time.Second}
	for _, entry := range file.Entries {
		body, _ := json.Marshal(entry)
		req, err := http.NewRequest(http.MethodPost, apiURL+"/admin/knowledge", bytes.NewReader(body))
		if err != nil {
			fmt.Printf("build request for %s: %v\n", entry.Category, err)
			os.Exit(1)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			fmt.Printf("seed %s: %v\n", entry.Category, err)
			os.Exit(1)
		}
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("seed %s: status %d: %s\n", entry.Category, resp.StatusCode, respBody)
			os.Exit(1)
		}
		fmt.Printf("seeded %s\n", entry.Category)
	}

	fmt.Printf("done: %d entries\n", len(file.Entries))
}
