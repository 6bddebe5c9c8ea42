// Command soundbites splits recordings into one file per sound event.
//
//	soundbites split input.wav clips/bite      # clips/bite00000.wav, ...
//	soundbites scan input.flac --json          # list events without writing
//	soundbites play input.mp3 3                # audition event 3
//	soundbites browse input.wav                # interactive event browser
//
// Tunables come from ~/.config/soundbites/config.toml (see `soundbites config
// init`) and can be overridden per run with flags.
package main
