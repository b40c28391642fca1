// Command seed registers a set of demo devices and posts 24 hours of
// per-minute telemetry through the public API.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

type seedDevice struct {
	slug string
	name string
}

var seedDevices = []seedDevice{
	{"fridge", "Fridge"},
	{"ac", "AC"},
	{"tv", "TV"},
	{"washing-machine", "Washing Machine"},
	{"router", "Router"},
}

// profile returns the baseline kWh-per-minute draw of a device at a
// given hour of day.
func profile(slug string, hour int) float64 {
	switch slug {
	case "fridge":
		return 0.012
	case "ac":
		if hour >= 10 && hour <= 22 {
			return 0.2
		}
		return 0.05
	case "tv":
		if hour >= 18 && hour <= 23 {
			return 0.05
		}
		return 0.01
	case "washing-machine":
		if hour == 8 {
			return 0.5
		}
		return 0.0
	case "router":
		return 0.005
	default:
		return 0.01
	}
}

func main() {
	apiURL := flag.String("url", "http://localhost:8081", "base URL of the API")
	token := flag.String("token", os.Getenv("SEED_TOKEN"), "bearer token of the seed user")
	flag.Parse()

	if *token == "" {
		log.Fatal("missing token: pass -token or set SEED_TOKEN")
	}

	client := resty.New().
		SetBaseURL(*apiURL).
		SetAuthToken(*token).
		SetHeader("Content-Type", "application/json")

	for _, d := range seedDevices {
		resp, err := client.R().
			SetBody(map[string]string{"name": d.name, "slug": d.slug}).
			Post("/devices")
		if err != nil {
			log.Fatalf("Error registering device %s: %v", d.slug, err)
		}
		// 409 means the device survived a previous run.
		if resp.StatusCode() != 201 && resp.StatusCode() != 409 {
			log.Fatalf("Unexpected status registering device %s: %s", d.slug, resp.Status())
		}
	}
	log.Printf("Registered %d devices", len(seedDevices))

	end := time.Now().UTC().Truncate(time.Minute)
	start := end.Add(-24 * time.Hour)

	count := 0
	for cur := start; cur.Before(end); cur = cur.Add(time.Minute) {
		for _, d := range seedDevices {
			kwh := profile(d.slug, cur.Hour()) + (rand.Float64()*0.006 - 0.003)
			if kwh < 0 {
				kwh = 0
			}

			resp, err := client.R().
				SetBody(map[string]interface{}{
					"timestamp":  cur.Format(time.RFC3339),
					"energy_kwh": kwh,
				}).
				Post(fmt.Sprintf("/devices/%s/telemetry", d.slug))
			if err != nil {
				log.Fatalf("Error posting reading for %s: %v", d.slug, err)
			}
			if resp.StatusCode() != 201 {
				log.Fatalf("Unexpected status posting reading for %s: %s", d.slug, resp.Status())
			}
			count++
		}
	}

	log.Printf("✅ Generated %d readings covering the last 24 hours", count)
}
