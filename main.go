package main

import (
	"fmt"
	gologger "log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Shopify/sarama"
	"github.com/companieshouse/chs.go/log"
	"github.com/jaina/polo-report-service/config"
	"github.com/jaina/polo-report-service/service"
	"github.com/shopspring/decimal"
)

func main() {
	log.Namespace = "polo-report-service"

	// Push the Sarama logs into our custom writer
	sarama.Logger = gologger.New(&log.Writer{}, "[Sarama] ", gologger.LstdFlags)

	// Asaas expects amounts as JSON numbers and report rows carry them the same way
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Get()
	if err != nil {
		log.Error(fmt.Errorf("error configuring service: %s. Exiting", err), nil)
		return
	}

	log.Info("intialising polo-report-service...")

	mainChannel := make(chan os.Signal, 1)

	svc, err := service.New(cfg)
	if err != nil {
		log.Error(fmt.Errorf("error initialising service: '%s'. Exiting", err), nil)
		return
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go svc.Start(&wg, mainChannel)

	waitForServiceClose(&wg, mainChannel)

	log.Info("Application successfully shutdown")
}

// waitForServiceClose will receive the close signal and forward a notification to the service
// so it drains in-flight requests and closes its store and producer before exiting.
func waitForServiceClose(wg *sync.WaitGroup, mainChannel chan os.Signal) {

	notificationChannel := make(chan os.Signal, 1)
	signal.Notify(notificationChannel, os.Interrupt, syscall.SIGTERM)

	notification := <-notificationChannel
	log.Info("Close signal received, fanning out...")
	log.Debug("Sending notification to service channel")
	mainChannel <- notification
	log.Info("Fan out completed")

	wg.Wait()
}
