package main

import "github.com/oshokin/vault-ci-helper/cmd/vault-ci-helper/cmd"

func main() {
	cmd.Execute()
}
