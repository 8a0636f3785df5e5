package main

import (
	"net/http"
	_ "net/http/pprof"

	"fractalglass/misc"
)

func StartPProf() {
	DebugPutsPersist("pprof", "localhost:6060")
	go func() {
		misc.InfoLogger.Print("initializing pprof")
		misc.InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
	}()
}
