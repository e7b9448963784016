package main

import "github.com/Mahafuj2040/mamar-bank/cmd"

func main() {
	cmd.Execute()
}
