package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"decisionpartner/internal/config"
	"decisionpartner/internal/invoke"
	"decisionpartner/internal/llmclient"
	"decisionpartner/internal/partner"
	"decisionpartner/internal/pipeline"
)

func main() {
	cfgPath := flag.String("config", "", "path to a YAML candidates file")
	fake := flag.Bool("fake", false, "use the offline fake model")
	flag.Parse()

	_ = godotenv.Load()

	decision := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if decision == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		decision = strings.TrimSpace(string(b))
	}

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

	fmt.Println(partner.Think(ctx, llm, decision))
}
