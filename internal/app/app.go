package app

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/drstein77/techaurex/internal/catalog"
	"github.com/drstein77/techaurex/internal/config"
	"github.com/drstein77/techaurex/internal/controllers"
	"github.com/drstein77/techaurex/internal/dbkeeper"
	"github.com/drstein77/techaurex/internal/logger"
	"github.com/drstein77/techaurex/internal/storage"
)

type Server struct {
	srv     *http.Server
	ctx     context.Context
	option  *config.Options
	storage *storage.MemoryStorage
	ready   chan struct{}
	done    chan struct{}
	stop    sync.Once

	Log *logger.Logger
}

// NewServer creates a new Server instance with the provided context
func NewServer(ctx context.Context) *Server {
	// create and initialize a new option instance
	option := config.NewOptions()
	option.ParseFlags()

	// get a new logger
	nLogger, err := logger.NewLogger(option.LogLevel())
	if err != nil {
		log.Fatalln(err)
	}

	return &Server{
		ctx:    ctx,
		option: option,
		ready:  make(chan struct{}),
		done:   make(chan struct{}),
		Log:    nLogger,
	}
}

// Serve builds the catalog and runs the HTTP server until Shutdown.
func (server *Server) Serve() {
	server.storage = storage.NewMemoryStorage(
		server.ctx,
		server.keeper(),
		catalog.NewShuffler(server.option.ShuffleSeed()),
		server.Log,
	)

	basecontr := controllers.NewBaseController(server.ctx, server.storage, server.Log, server.option.FeedbackRate())

	ln, err := net.Listen("tcp", server.option.RunAddr())
	if err != nil {
		server.Log.Error("cannot listen", zap.String("addr", server.option.RunAddr()), zap.Error(err))
		server.storage.Close()
		server.finish()
		return
	}
	server.run(ln, basecontr.Route())
}

// run serves handler on ln and returns once Shutdown has finished.
func (server *Server) run(ln net.Listener, handler http.Handler) {
	server.srv = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	close(server.ready)

	server.Log.Info("server started", zap.String("addr", ln.Addr().String()))
	if err := server.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		server.Log.Error("server stopped", zap.Error(err))
		server.finish()
	}
	<-server.done
}

func (server *Server) finish() {
	server.stop.Do(func() { close(server.done) })
}

// keeper picks the catalog source: database first, then a catalog file.
// A nil keeper means the built-in dataset.
func (server *Server) keeper() storage.Keeper {
	if kp := dbkeeper.NewDBKeeper(server.ctx, server.option.DataBaseDSN, server.Log); kp != nil {
		return kp
	}
	if path := server.option.CatalogFile(); path != "" {
		return catalog.FileSource{Path: path}
	}
	return nil
}

// Shutdown stops the HTTP server and releases the catalog source. It waits
// for a server that is still starting; timeout bounds connection draining.
func (server *Server) Shutdown(timeout time.Duration) {
	select {
	case <-server.ready:
	case <-server.done:
		return
	}
	defer server.finish()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.srv.Shutdown(ctx); err != nil {
		server.Log.Error("server shutdown failed", zap.Error(err))
	}
	if server.storage != nil && !server.storage.Close() {
		server.Log.Error("catalog source did not close cleanly")
	}
	server.Log.Info("server stopped")
	_ = server.Log.Sync()
}
