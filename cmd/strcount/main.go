// cmd/strcount/main.go
package main

import (
	"strmatch/internal/appshell"
	"strmatch/internal/countapp"
)

func main() { appshell.Main(countapp.RunContext) }
