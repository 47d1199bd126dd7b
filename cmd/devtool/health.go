package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

const slowResponseThreshold = time.Second

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running server (default " + defaultBaseURL + ")"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := defaultBaseURL
	if len(args) > 0 {
		baseURL = strings.TrimRight(args[0], "/")
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	client := http.Client{Timeout: 5 * time.Second}
	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		if err := checkEndpoint(client, baseURL+path); err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		duration := time.Since(start)

		if duration > slowResponseThreshold {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, duration)
		}
	}
	return nil
}

func checkEndpoint(client http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status code %d", resp.StatusCode)
	}
	return nil
}
