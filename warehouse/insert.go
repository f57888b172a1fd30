package warehouse

import "github.com/richimp95/Project-Sparkify-AWS/constants"

// The five transformation statements, run in a fixed order for determinism and logging.
// None of them reads a table another one writes, so correctness does not depend on the order.
// Each is a DISTINCT projection from staging; dedupe happens here at insert time, not via
// upsert or merge, so rerunning against populated targets fails on the primary keys.

// The staging sources share no surrogate key, so songplays matches events to catalog
// entries on artist name equality. The join is deliberately weak: names that collide or
// differ in formatting can over- or under-match, and that behaviour is preserved.
const insertSongplays = `insert into songplays (start_time, user_id, level, song_id, artist_id, session_id, location, user_agent)
(   select distinct
        evs.ts,
        evs.userId,
        evs.level,
        sngs.song_id,
        sngs.artist_id,
        evs.sessionId,
        evs.location,
        evs.userAgent
    from staging_events as evs
    join staging_songs as sngs on evs.artist = sngs.artist_name
    where evs.page = 'NextSong'
)`

// A user that appears with more than one level yields one row per (user_id, level)
// combination; there is no tie-break on purpose.
const insertUsers = `insert into users
(   select distinct
        userId,
        first_name,
        last_name,
        gender,
        level
    from staging_events
    where page = 'NextSong' and userId is not null
)`

const insertSongs = `insert into songs
(   select distinct
        song_id,
        title,
        artist_id,
        year,
        duration
    from staging_songs
    where song_id is not null
)`

const insertArtists = `insert into artists
(   select distinct
        artist_id,
        artist_name,
        artist_location,
        artist_latitude,
        artist_longitude
    from staging_songs
    where artist_id is not null
)`

const insertTime = `insert into time
(   select distinct
        ts,
        extract(hour from ts),
        extract(day from ts),
        extract(week from ts),
        extract(month from ts),
        extract(year from ts),
        extract(weekday from ts)
    from staging_events
    where page = 'NextSong' and ts is not null
)`

// InsertStatements returns the transformation statements in execution order.
func InsertStatements() []Statement {
	return []Statement{
		{Name: constants.StmtInsertSongplays, Table: TableSongplays, SQL: insertSongplays},
		{Name: constants.StmtInsertUsers, Table: TableUsers, SQL: insertUsers},
		{Name: constants.StmtInsertSongs, Table: TableSongs, SQL: insertSongs},
		{Name: constants.StmtInsertArtists, Table: TableArtists, SQL: insertArtists},
		{Name: constants.StmtInsertTime, Table: TableTime, SQL: insertTime},
	}
}
