package main

import "github.com/festpass/festpass/internal/app"

func main() {
	err := app.NewFestPassApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
