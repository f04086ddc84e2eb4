package main

import "github.com/okillli/MinesweeperNew-sub001/cmd"

func main() {
	cmd.Execute()
}
