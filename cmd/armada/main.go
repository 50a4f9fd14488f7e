// Command armada is an interactive two-player console game. Moves are
// entered as square pairs ("e2 e4"); the board window follows wherever the
// pieces have wandered.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/armadachess/armada/internal/chess"
	"github.com/armadachess/armada/internal/engine"
)

func main() {
	b := chess.NewBoard()
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("armada - chess on an endless board")
	fmt.Println("enter moves as two squares (\"e2 e4\"), or \"quit\"")

	for {
		printBoard(b)

		if engine.IsCheckmate(b) {
			fmt.Printf("checkmate - %s wins\n", b.Turn.Opposite())
			return
		}
		if engine.IsStalemate(b) {
			fmt.Println("stalemate - draw")
			return
		}
		if engine.IsInCheck(b, b.Turn) {
			fmt.Printf("%s is in check\n", b.Turn)
		}

		fmt.Printf("%s> ", b.Turn)
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())
		if line == "quit" || line == "exit" {
			return
		}
		if line == "" {
			continue
		}

		from, to, err := chess.ParseMove(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		outcome, err := engine.AttemptMove(b, from, to)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if outcome == engine.PromotionPending {
			if err := promptPromotion(b, in); err != nil {
				return
			}
		}
	}
}

// promptPromotion loops until a valid promotion choice is entered.
func promptPromotion(b *chess.Board, in *bufio.Scanner) error {
	choices := engine.PromotionChoices(b)
	for {
		fmt.Print("promote to:")
		for i, k := range choices {
			fmt.Printf(" [%d] %s", i, k)
		}
		fmt.Print(" > ")
		if !in.Scan() {
			return fmt.Errorf("input closed")
		}
		n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil {
			fmt.Println("enter a choice number")
			continue
		}
		if err := engine.SelectPromotion(b, n); err != nil {
			fmt.Println(err)
			continue
		}
		return nil
	}
}

// printBoard renders every stored rank, highest first, with rank labels in
// display numbering. Walls are implicit; only real storage is shown.
func printBoard(b *chess.Board) {
	fmt.Println()
	for r := b.LastRank(); r >= b.FirstRank(); r-- {
		fmt.Printf("%4d  ", chess.AddSat(r, 1))
		for f := 0; f < chess.NumFiles; f++ {
			p, _ := b.Get(chess.Coord{Rank: r, File: f})
			fmt.Printf("%c ", cellRune(p))
		}
		fmt.Println()
	}
	fmt.Print("      ")
	for f := 0; f < chess.NumFiles; f++ {
		fmt.Printf("%c ", 'a'+f)
	}
	fmt.Println()
	fmt.Println()
}

func cellRune(p chess.Piece) rune {
	if p.IsEmpty() {
		return '.'
	}
	r := rune(p.Kind.Letter())
	if p.Team == chess.Black {
		r += 'a' - 'A'
	}
	return r
}
