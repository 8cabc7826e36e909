package history

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

type DefaultStore struct {
	db *sql.DB
}

// Hash identifies beatmap content independently of its file name
func Hash(content []byte) string {
	sum := sha256.Sum256(content)
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *DefaultStore) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists runs
	  (
		  id integer not null primary key,
		  sum text not null,
		  file text,
		  mode integer,
		  objects integer,
		  duration_ns integer,
		  created integer
	  );
	create index if not exists runs_sum on runs(sum);
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return errors.Wrap(err, "unable to create runs table")
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func (s *DefaultStore) Save(run Run) error {
	if run.Created.IsZero() {
		run.Created = time.Now()
	}
	_, err := s.db.Exec(
		"insert into runs(sum, file, mode, objects, duration_ns, created) values(?, ?, ?, ?, ?, ?)",
		run.Sum, run.File, run.Mode, run.Objects, run.Duration.Nanoseconds(), run.Created.UnixNano(),
	)
	if nil != err {
		return errors.Wrap(err, "unable to save run")
	}
	return nil
}

func (s *DefaultStore) Load(sum string) ([]Run, error) {
	runs := []Run{}
	rows, err := s.db.Query("select sum, file, mode, objects, duration_ns, created from runs where sum = ? order by id", sum)
	if nil != err {
		return runs, errors.Wrap(err, "unable to load runs")
	}
	defer rows.Close()
	for rows.Next() {
		var r Run
		var duration, created int64
		if err := rows.Scan(&r.Sum, &r.File, &r.Mode, &r.Objects, &duration, &created); nil != err {
			return runs, errors.Wrap(err, "unable to read run")
		}
		r.Duration = time.Duration(duration)
		r.Created = time.Unix(0, created)
		runs = append(runs, r)
	}
	if err := rows.Err(); nil != err {
		return runs, errors.Wrap(err, "unable to read runs")
	}
	return runs, nil
}
