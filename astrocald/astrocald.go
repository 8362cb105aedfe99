// Public domain.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/soniakeys/exit"

	"github.com/soniakeys/astrocal/internal/httpapi"
)

const parentImport = "github.com/soniakeys/astrocal"
const versionString = "astrocald version 0.1"
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()
	flag.Usage = func() {
		os.Stderr.WriteString("Usage: astrocald [options]\n")
		flag.PrintDefaults()
		os.Stderr.WriteString(`
For full documentation:
   go doc ` + parentImport + `/astrocald
`)
	}
	vers := flag.Bool("v", false, "display version and copyright")
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}

	port := getEnv("PORT", "8080")
	h := httpapi.NewHandler()
	if s := os.Getenv("ASTROCALD_TWILIGHT"); s != "" {
		d, err := strconv.ParseFloat(s, 64)
		if err != nil || d < 0 || d > 20 {
			exit.Log("ASTROCALD_TWILIGHT must be 0 to 20 degrees")
		}
		h.Twilight = d
	}
	router := httpapi.SetupRouter(h)

	addr := ":" + port
	log.Printf("astrocald listening on %s", addr)
	log.Printf("twilight depression %g°", h.Twilight)
	if err := router.Run(addr); err != nil {
		exit.Log(err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
