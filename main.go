package main

import "github.com/danupratama/category-admin/cmd"

func main() {
	cmd.Execute()
}
