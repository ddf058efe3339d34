// Command lighthouse-keys inspects the engine's Zobrist key space and renders
// bitboard masks for debugging.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/iudwgerte/Lighthouse/internal/board"
	"github.com/iudwgerte/Lighthouse/internal/config"
	"github.com/iudwgerte/Lighthouse/internal/diagram"
	"github.com/iudwgerte/Lighthouse/internal/keystore"
	"github.com/iudwgerte/Lighthouse/internal/zobrist"
)

var (
	summary = flag.Bool("summary", false, "print the seed, digest and sample keys")
	verify  = flag.Bool("verify", false, "check the key space against the recorded fingerprint")
	dataDir = flag.String("data", "", "key store directory (overrides LIGHTHOUSE_DATA_DIR)")
	svgOut  = flag.String("svg", "", "write the mask given by -mask to this SVG file")
	mask    = flag.String("mask", "0", "bitboard mask in hex, e.g. 0xff00")
	shift   = flag.String("shift", "", "shift the mask before rendering: n, s, e, w, ne, nw, se, sw, nn, ss")
	flip    = flag.Bool("flip", false, "render from Black's side")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("lighthouse-keys: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	keys := zobrist.New()

	if *summary {
		printSummary(keys)
	}

	// An explicit data directory opts in to the startup check.
	if *verify || (cfg.VerifyKeys && cfg.DataDir != "") {
		if err := verifyKeys(keys, cfg.DataDir); err != nil {
			log.Fatal(err)
		}
	}

	if *svgOut != "" {
		if err := renderMask(*svgOut, *mask, *shift, cfg.DiagramSquare, *flip); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *svgOut)
	}
}

func printSummary(keys *zobrist.Keys) {
	fp, err := keystore.FingerprintOf(keys)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("seed      %d\n", fp.Seed)
	fmt.Printf("entries   %d\n", fp.Entries)
	fmt.Printf("digest    %016x\n", fp.Digest)
	fmt.Printf("P@a1      %016x\n", uint64(keys.Piece(board.WhitePawn, board.A1)))
	fmt.Printf("k@h8      %016x\n", uint64(keys.Piece(board.BlackKing, board.H8)))
	fmt.Printf("castle -  %016x\n", uint64(keys.Castling(board.NoCastling)))
	fmt.Printf("castle KQkq %016x\n", uint64(keys.Castling(board.AnyCastling)))
	fmt.Printf("turn      %016x\n", uint64(keys.Turn()))
}

func verifyKeys(keys *zobrist.Keys, base string) error {
	dir, err := keystore.DatabaseDir(base)
	if err != nil {
		return fmt.Errorf("resolve key store directory: %w", err)
	}

	store, err := keystore.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	created, err := store.Verify(keys)
	switch {
	case errors.Is(err, keystore.ErrKeyDrift):
		return fmt.Errorf("%w (data recorded under the old keys is stale; remove %s to accept the new keys)", err, dir)
	case err != nil:
		return err
	case created:
		log.Printf("recorded key fingerprint in %s", dir)
	default:
		log.Printf("key space matches fingerprint in %s", dir)
	}
	return nil
}

var directions = map[string]board.Direction{
	"n":  board.North,
	"s":  board.South,
	"e":  board.East,
	"w":  board.West,
	"ne": board.NorthEast,
	"nw": board.NorthWest,
	"se": board.SouthEast,
	"sw": board.SouthWest,
	"nn": board.North + board.North,
	"ss": board.South + board.South,
}

func renderMask(path, hex, dir string, square int, flipped bool) error {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(hex), "0x"), 16, 64)
	if err != nil {
		return fmt.Errorf("parse mask %q: %w", hex, err)
	}
	b := board.Bitboard(v)
	title := fmt.Sprintf("%#016x", v)

	if dir != "" {
		d, ok := directions[strings.ToLower(dir)]
		if !ok {
			return fmt.Errorf("unknown shift direction %q", dir)
		}
		b = board.Shift(b, d)
		title += " shifted " + strings.ToLower(dir)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := diagram.Options{Square: square, Title: title, Flip: flipped}
	if err := diagram.Render(f, b, opts); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}
