package warehouse

// CheckQueries returns the read-only probes run after a load: a row count per
// table plus a duplicate-key probe per dimension. The duplicate probes should
// return no rows; users is the one most likely to report duplicates because a
// user appearing with more than one subscription level yields one row per
// (user_id, level) combination.
func CheckQueries() []Statement {
	counts := []string{
		TableStagingEvents,
		TableStagingSongs,
		TableSongplays,
		TableUsers,
		TableSongs,
		TableArtists,
		TableTime,
	}
	retval := make([]Statement, 0, len(counts)+4)
	for _, t := range counts {
		retval = append(retval, Statement{
			Name:  "count-" + t,
			Table: t,
			SQL:   "select count(*) from " + t,
		})
	}
	dupes := []struct {
		table string
		key   string
	}{
		{TableUsers, "user_id"},
		{TableSongs, "song_id"},
		{TableArtists, "artist_id"},
		{TableTime, "start_time"},
	}
	for _, d := range dupes {
		retval = append(retval, Statement{
			Name:  "duplicates-" + d.table,
			Table: d.table,
			SQL: "select " + d.key + ", count(*) from " + d.table +
				" group by " + d.key + " having count(*) > 1 limit 5",
		})
	}
	return retval
}
