package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "list":
		listConstellations()
	case "get":
		getConstellation(args)
	case "favorites":
		listFavorites()
	case "favorite":
		toggleFavorite(args)
	case "share":
		shareConstellation(args)
	case "wheel":
		showWheel()
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`starchart - zodiac constellation catalog client

Usage:
  starchart list                       List all constellations
  starchart get <id>                   Show one constellation
  starchart favorites                  List favorited constellation IDs
  starchart favorite <add|remove> <id> Add or remove a favorite
  starchart share <id>                 Get a shareable reference
  starchart wheel                      Show the radial wheel layout
  starchart help                       Show this help

The API base URL is read from STARCHART_API (default http://localhost:8080).`)
}

func getAPIURL() string {
	if url := os.Getenv("STARCHART_API"); url != "" {
		return url + "/api"
	}
	return "http://localhost:8080/api"
}

func listConstellations() {
	resp, err := http.Get(getAPIURL() + "/constellations")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var constellations []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&constellations); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSYMBOL\tELEMENT\tDATE")
	for _, c := range constellations {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\n",
			c["id"], c["name"], c["symbol"], c["element"], c["date"])
	}
	w.Flush()
}

func getConstellation(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: starchart get <id>")
		return
	}

	resp, err := http.Get(getAPIURL() + "/constellations/" + args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		fmt.Printf("constellation %q not found\n", args[0])
		return
	}

	var c map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&c); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%v %v\n", c["name"], c["symbol"])
	fmt.Fprintf(w, "Element:\t%v\n", c["element"])
	fmt.Fprintf(w, "Dates:\t%v\n", c["date"])
	fmt.Fprintf(w, "RA / Dec:\t%v / %v\n", c["rightAscension"], c["declination"])
	fmt.Fprintf(w, "Area:\t%v sq. deg. (%v)\n", c["areaDegrees"], c["sizeRank"])
	fmt.Fprintf(w, "Borders:\t%v\n", c["borders"])
	fmt.Fprintf(w, "Brightest:\t%v\n", c["brightestStars"])
	fmt.Fprintf(w, "Observation:\t%v\n", c["observationPeriod"])
	w.Flush()
	fmt.Printf("\n%v\n", c["description"])
}

func listFavorites() {
	resp, err := http.Get(getAPIURL() + "/favorites")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var ids []string
	if err := json.NewDecoder(resp.Body).Decode(&ids); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if len(ids) == 0 {
		fmt.Println("no favorites yet")
		return
	}
	for _, id := range ids {
		fmt.Println(id)
	}
}

func toggleFavorite(args []string) {
	if len(args) < 2 || (args[0] != "add" && args[0] != "remove") {
		fmt.Println("Usage: starchart favorite <add|remove> <id>")
		return
	}

	payload := map[string]string{
		"constellationId": args[1],
		"action":          args[0],
	}
	data, _ := json.Marshal(payload)

	resp, err := http.Post(getAPIURL()+"/favorites", "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	switch resp.StatusCode {
	case http.StatusCreated:
		fmt.Printf("✓ favorited %s\n", args[1])
	case http.StatusOK:
		fmt.Printf("✓ removed %s\n", args[1])
	default:
		fmt.Printf("✗ %v\n", result["message"])
	}
}

func shareConstellation(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: starchart share <id>")
		return
	}

	payload := map[string]string{"constellationId": args[0]}
	data, _ := json.Marshal(payload)

	resp, err := http.Post(getAPIURL()+"/share", "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	if resp.StatusCode == http.StatusOK {
		fmt.Printf("✓ share link: %v\n", result["shareUrl"])
	} else {
		fmt.Printf("✗ %v\n", result["message"])
	}
}

func showWheel() {
	resp, err := http.Get(getAPIURL() + "/wheel")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var items []struct {
		ID      string            `json:"id"`
		Symbol  string            `json:"symbol"`
		Anchors map[string]string `json:"anchors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYMBOL\tANCHORS")
	for _, item := range items {
		anchors, _ := json.Marshal(item.Anchors)
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.ID, item.Symbol, anchors)
	}
	w.Flush()
}
