// Command example walks through the Cloudflare clearance flow: fetch a page
// behind a Cloudflare wall through a proxy, have the service solve the
// challenge, then repeat the request with the cf_clearance cookie.
package main

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"

	solvium "github.com/solvium/solvium-go"
)

const page = "https://loyalty.campnetwork.xyz/loyalty"

func main() {
	apiKey := os.Getenv("API_KEY")
	proxyURL := os.Getenv("PROXY")
	if apiKey == "" || proxyURL == "" {
		log.Fatal("set the API_KEY and PROXY environment variables")
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		log.Fatalf("parse proxy: %v", err)
	}

	session := &http.Client{
		Transport: &http.Transport{
			Proxy:           http.ProxyURL(proxy),
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	// Step 1: obtain the challenge page through the proxy.
	resp, err := session.Get(page)
	if err != nil {
		log.Fatalf("fetch challenge page: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		log.Fatalf("read challenge page: %v", err)
	}

	// Step 2: solve the challenge.
	client, err := solvium.NewClient(apiKey, solvium.WithVerbose(true))
	if err != nil {
		log.Fatal(err)
	}

	clearance, err := client.CFClearance(context.Background(),
		page, base64.StdEncoding.EncodeToString(body), proxyURL)
	if err != nil {
		log.Fatalf("solve clearance: %v", err)
	}
	if clearance == "" {
		log.Fatal("challenge could not be solved")
	}

	// Step 3: repeat the request with the clearance cookie.
	req, err := http.NewRequest(http.MethodGet, page, nil)
	if err != nil {
		log.Fatal(err)
	}
	req.AddCookie(&http.Cookie{Name: "cf_clearance", Value: clearance})

	resp, err = session.Do(req)
	if err != nil {
		log.Fatalf("fetch with clearance: %v", err)
	}
	defer resp.Body.Close()

	log.Printf("status: %d", resp.StatusCode)
}
