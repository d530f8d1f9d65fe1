package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/storeadmin/internal/buildinfo"
	"github.com/dmitrijs2005/storeadmin/internal/client/cli"
	"github.com/dmitrijs2005/storeadmin/internal/client/client"
	"github.com/dmitrijs2005/storeadmin/internal/client/config"
	"github.com/dmitrijs2005/storeadmin/internal/client/media"
	"github.com/dmitrijs2005/storeadmin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/storeadmin/internal/client/services"
	"github.com/dmitrijs2005/storeadmin/internal/client/session"
	"github.com/dmitrijs2005/storeadmin/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("%v", err)
	}

}

func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(os.Stderr, cfg.LogLevel)

	db, err := client.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	api, err := client.NewHTTPClient(cfg.APIBaseURL, logger)
	if err != nil {
		return err
	}
	defer api.Close()

	mgr, err := session.NewManager(ctx, api, metadata.NewSQLiteRepository(db), logger)
	if err != nil {
		return err
	}

	resolver, err := media.NewResolver(cfg.UploadsBaseURL, logger)
	if err != nil {
		return err
	}

	app := cli.NewApp(cli.Deps{
		Session:    mgr,
		Products:   services.NewProductService(api, mgr),
		Categories: services.NewCategoryService(api, mgr),
		Profile:    services.NewProfileService(api, mgr),
		Media:      resolver,
		Log:        logger,
	}, os.Stdin, os.Stdout)

	app.Run(ctx)
	return nil
}
