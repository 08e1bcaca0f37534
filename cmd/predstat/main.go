// predstat loads a client/server trace pair and prints per-series summary
// statistics, for a quick look without opening the viewer.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gretchenfrage/predview/src/trace"
)

func main() {
	var clientPath, serverPath string
	flag.StringVar(&clientPath, "client", "steve-client.csv", "Client trace CSV")
	flag.StringVar(&serverPath, "server", "steve-server.csv", "Server trace CSV")
	flag.Parse()

	client, err := trace.LoadClientSamples(clientPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	server, err := trace.LoadServerSamples(serverPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("client: %d samples%s\n", len(client), clientSpan(client))
	fmt.Printf("server: %d samples%s\n", len(server), serverSpan(server))
	fmt.Println()
	for _, s := range append(trace.SummarizeClient(client), trace.SummarizeServer(server)...) {
		fmt.Printf("%-22s n=%-6d min=%-12.4f max=%-12.4f mean=%-12.4f sd=%.4f\n",
			s.Name, s.Count, s.Min, s.Max, s.Mean, s.StdDev)
	}
}

func clientSpan(rows []trace.ClientSample) string {
	if len(rows) == 0 {
		return ""
	}
	return span(rows[0].Timestamp, rows[len(rows)-1].Timestamp)
}

func serverSpan(rows []trace.ServerSample) string {
	if len(rows) == 0 {
		return ""
	}
	return span(rows[0].Timestamp, rows[len(rows)-1].Timestamp)
}

func span(first, last time.Time) string {
	const layout = "2006-01-02 15:04:05"
	return fmt.Sprintf(", %s .. %s (%s)",
		first.UTC().Format(layout), last.UTC().Format(layout), last.Sub(first))
}
