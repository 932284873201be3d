// wordlebot is a Matrix bot that helps with daily word puzzles: paste your
// guess results and it narrows the word list and suggests the next guess.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/matrix-org/gomatrix"

	"github.com/jrhy/wordlebot/bot"
	"github.com/jrhy/wordlebot/solver"
)

type options struct {
	Server   string `short:"s" long:"server" env:"MATRIX_HOMESERVER" default:"https://matrix.org" description:"homeserver URL"`
	Username string `short:"u" long:"user" env:"MATRIX_USER" description:"user ID, for password login"`
	Password string `short:"p" long:"password" env:"MATRIX_PASS" description:"password, for password login"`
	Token    string `short:"t" long:"token" env:"MATRIX_TOKEN" description:"access token; skips login"`
	Words    string `short:"w" long:"words" env:"WORDLEBOT_WORDS" description:"word list file overriding the embedded corpus"`
	Stdin    bool   `long:"stdin" description:"read one message from stdin, print the reply, and exit"`
	Sessions int    `long:"sessions" default:"512" description:"max identities to retain sessions for"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	words, err := loadWords(opts.Words)
	if err != nil {
		return err
	}
	log.Printf("corpus loaded words=%d", len(words))

	sessions, err := solver.NewSessionStore(opts.Sessions)
	if err != nil {
		return err
	}
	responder := bot.New(words, sessions)

	if opts.Stdin {
		body, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		fmt.Println(responder.Respond("stdin", string(body)))
		return nil
	}
	return serve(opts, responder)
}

func loadWords(path string) ([]string, error) {
	if path == "" {
		return solver.Embedded()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, err := solver.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

func serve(opts options, responder *bot.Responder) error {
	client, err := gomatrix.NewClient(opts.Server, "", opts.Token)
	if err != nil {
		return err
	}
	if opts.Token == "" {
		if opts.Username == "" || opts.Password == "" {
			return errors.New("need -t token, or -u user and -p password")
		}
		resp, err := client.Login(&gomatrix.ReqLogin{
			Type:     "m.login.password",
			User:     opts.Username,
			Password: opts.Password,
		})
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		client.SetCredentials(resp.UserID, resp.AccessToken)
	}

	syncer, ok := client.Syncer.(*gomatrix.DefaultSyncer)
	if !ok {
		return fmt.Errorf("unexpected syncer type %T", client.Syncer)
	}

	syncer.OnEventType("m.room.member", func(ev *gomatrix.Event) {
		if ev.Content["membership"] != "invite" || ev.StateKey == nil || *ev.StateKey != client.UserID {
			return
		}
		if _, err := client.JoinRoom(ev.RoomID, "", nil); err != nil {
			log.Printf("join failed room=%s: %v", ev.RoomID, err)
			return
		}
		log.Printf("joined room=%s inviter=%s", ev.RoomID, ev.Sender)
	})

	syncer.OnEventType("m.room.message", func(ev *gomatrix.Event) {
		if ev.Sender == client.UserID {
			return
		}
		body, ok := ev.Body()
		if !ok || strings.TrimSpace(body) == "" {
			return
		}
		// One message is processed to completion before the syncer delivers
		// the next, so per-identity session updates never race.
		reply := responder.Respond(ev.Sender, body)
		if _, err := client.SendText(ev.RoomID, reply); err != nil {
			log.Printf("send failed room=%s: %v", ev.RoomID, err)
		}
	})

	log.Printf("bot running user=%s server=%s", client.UserID, opts.Server)
	for {
		if err := client.Sync(); err != nil {
			log.Printf("sync error, retrying in 5s: %v", err)
			time.Sleep(5 * time.Second)
		}
	}
}
