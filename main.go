package main

import (
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/anacrolix/tagflag"
	"github.com/gofiber/fiber/v2"
	"github.com/op/go-logging"

	"github.com/rosubs/rosubs/api"
	"github.com/rosubs/rosubs/config"
	"github.com/rosubs/rosubs/providers"
	"github.com/rosubs/rosubs/util"
)

var log = logging.MustGetLogger("main")

func main() {
	tagflag.Parse(&config.Args)

	logging.SetFormatter(logging.MustStringFormatter(
		`%{color}%{level:.4s}  %{module:-12s} ▶ %{shortfunc:-15s}  %{color:reset}%{message}`,
	))
	logging.SetBackend(logging.NewLogBackend(os.Stdout, "", 0))

	log.Infof("Starting Romanian Subtitles addon")
	log.Infof("Version: %s Go: %s", util.GetVersion(), runtime.Version())

	conf := config.Reload()

	searchers := providers.DefaultSearchers(conf)
	if len(searchers) == 0 {
		log.Critical("No subtitle sources enabled")
		os.Exit(1)
	}
	for _, searcher := range searchers {
		log.Infof("Source enabled: %s", searcher.Name())
	}

	agg := providers.NewAggregator(conf.RateInterval(), searchers...)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	api.Routes(app, agg)

	sigc := make(chan os.Signal, 2)
	signal.Notify(sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		<-sigc
		log.Info("Shutting down...")
		app.Shutdown()
	}()

	if err := app.Listen(conf.Listen()); err != nil {
		log.Critical(err)
		os.Exit(1)
	}
	log.Info("Goodbye")
}
