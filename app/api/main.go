package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/base/database/mongoclient"
	"github.com/campus-auction/goapi/base/log"
	bValidator "github.com/campus-auction/goapi/base/validator"
	mmiddleware "github.com/campus-auction/goapi/middleware"
	"github.com/campus-auction/goapi/service/query"
	auction_delivery "github.com/campus-auction/goapi/stores/auction/delivery/http"
	auction_repository "github.com/campus-auction/goapi/stores/auction/repository"
	auction_usecase "github.com/campus-auction/goapi/stores/auction/usecase"
	auth_middleware "github.com/campus-auction/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/campus-auction/goapi/stores/auth/usecase"
	hc_delivery "github.com/campus-auction/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/campus-auction/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/campus-auction/goapi/stores/healthcheck/usecase"
	user_delivery "github.com/campus-auction/goapi/stores/user/delivery/http"
	user_repository "github.com/campus-auction/goapi/stores/user/repository"
	user_usecase "github.com/campus-auction/goapi/stores/user/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient)
	userRepo := user_repository.NewUserRepo(q)
	auctionRepo := auction_repository.NewAuctionRepo(q)
	bidRepo := auction_repository.NewBidRepo(q)

	hc := hc_usecase.New(hcRepo)
	userUC := user_usecase.NewUserUseCase(&user_usecase.UserUseCaseCfg{
		Repo:               userRepo,
		AllowedEmailDomain: viper.GetString("auth.allowedEmailDomain"),
	})
	auctionUC := auction_usecase.NewAuctionUseCase(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo:  auctionRepo,
		BidRepo:      bidRepo,
		UserUC:       userUC,
		Query:        q,
		MinIncrement: viper.GetFloat64("auction.minIncrement"),
	})
	authUC := auth_usecase.New(viper.GetString("auth.jwtSecret"))

	authMiddleware := auth_middleware.New(authUC)

	hc_delivery.New(e, hc)
	user_delivery.New(e, authMiddleware.Auth(), userUC, authUC)
	auction_delivery.New(e, authMiddleware.Auth(), auctionUC)

	// background settlement of expired auctions
	sweeper := auction_usecase.NewSweeper(&auction_usecase.SweeperCfg{
		AuctionUC: auctionUC,
		Interval:  viper.GetDuration("auction.sweepInterval"),
	})
	sweeper.Start(context)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")

	sweeper.Stop()

	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
