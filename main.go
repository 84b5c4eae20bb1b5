package main

import (
	"os"

	"github.com/BerryBytes/aws-sso-wrapper/cmd/root"
)

func main() {
	os.Exit(root.Execute())
}
