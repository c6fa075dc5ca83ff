package main

import "github.com/rd1855/portfolio_backend/cmd"

func main() {
	cmd.Execute()
}
