// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/s3web/cmd/s3web/cmd"
)

func main() {
	cmd.Execute()
}
