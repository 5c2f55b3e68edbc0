package util

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// GetBytes fetches a URL body with a bounded timeout.
func GetBytes(url string) ([]byte, error) {
	client := http.Client{Timeout: 12 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
