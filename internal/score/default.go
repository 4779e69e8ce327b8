package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"log"
	"strconv"

	"git.lost.host/meutraa/affstat/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultScorer struct {
	// Database is the sqlite path, "./charts.db" when empty.
	Database string

	db *sql.DB
}

func (s *DefaultScorer) Init() error {
	path := s.Database
	if path == "" {
		path = "./charts.db"
	}
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists summaries
	  (
		  id integer not null primary key,
		  sum text,
		  total integer,
		  data bytearray
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultScorer) hashChart(c *game.Chart) string {
	// the derived caches are not marshalled, so this covers exactly the
	// headers and decoded commands
	data, err := json.Marshal(c)
	if nil != err {
		return ""
	}
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *DefaultScorer) Summarize(c *game.Chart) Summary {
	start, end := c.Interval()
	share := map[string]float64{}
	for bpm, p := range c.BPMProportion() {
		share[strconv.FormatFloat(bpm, 'f', -1, 64)] = p
	}
	return Summary{
		Total:    c.TotalCombo(),
		Tap:      c.ComboOf(game.KindTap),
		ArcTap:   c.ComboOf(game.KindArcTap),
		Hold:     c.ComboOf(game.KindHold),
		Arc:      c.ComboOf(game.KindArc),
		Flick:    c.ComboOf(game.KindFlick),
		Start:    start,
		End:      end,
		BPMShare: share,
	}
}

func (s *DefaultScorer) Save(c *game.Chart, summary *Summary) {
	data, err := json.Marshal(summary)
	if nil != err {
		log.Println("unable to marshal summary", err)
		return
	}
	_, err = s.db.Exec("insert into summaries(sum, total, data) values(?, ?, ?)",
		s.hashChart(c), summary.Total, data)
	if nil != err {
		log.Println("unable to save summary", err)
		return
	}
}

func (s *DefaultScorer) Load(c *game.Chart) []Summary {
	summaries := []Summary{}
	rows, err := s.db.Query("select data from summaries where sum = ?", s.hashChart(c))
	if nil != err && err != sql.ErrNoRows {
		log.Println("unable to load summaries", err)
		return summaries
	}
	defer rows.Close()
	for rows.Next() {
		var data []byte
		rows.Scan(&data)
		var summary Summary
		if err := json.Unmarshal(data, &summary); nil != err {
			log.Println("unable to unmarshal summary")
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
