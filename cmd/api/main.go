package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"decisionpartner/internal/config"
	"decisionpartner/internal/invoke"
	"decisionpartner/internal/llmclient"
	"decisionpartner/internal/pipeline"
)

func main() {
	port := flag.String("port", ":8080", "server port")
	cfgPath := flag.String("config", "", "path to a YAML candidates file")
	fake := flag.Bool("fake", false, "use the offline fake model")
	flag.Parse()

	_ = godotenv.Load()

	ctx := context.Background()

	var llm pipeline.Invoker
	if *fake {
		llm = invoke.NewWithClients("offline", llmclient.NewFakeClient())
	} else {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		iv, err := invoke.New(ctx, cfg, invoke.Logging())
		if err != nil {
			log.Fatal(err)
		}
		defer iv.Close()
		llm = iv
	}

	s := newAPIServer(llm)
	mux := buildMux(s)

	log.Printf("listening on %s", *port)
	srv := &http.Server{
		Addr:    *port,
		Handler: h2c.NewHandler(mux, &http2.Server{}),
	}
	log.Fatal(srv.ListenAndServe())
}
