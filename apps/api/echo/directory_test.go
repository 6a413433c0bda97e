package echoapi

import (
	"net/http"
	"testing"

	"github.com/trezcool/portal/core/alumni"
	"github.com/trezcool/portal/core/directory"
	"github.com/trezcool/portal/core/paper"
	"github.com/trezcool/portal/storage/database/fixtures"
)

func pickAlumni(ids ...int) []alumni.Alumnus {
	all := fixtures.Alumni()
	res := make([]alumni.Alumnus, 0, len(ids))
	for _, id := range ids {
		res = append(res, all[id-1])
	}
	return res
}

func pickPapers(ids ...int) []paper.Paper {
	all := fixtures.Papers()
	res := make([]paper.Paper, 0, len(ids))
	for _, id := range ids {
		res = append(res, all[id-1])
	}
	return res
}

func Test_alumniApi(t *testing.T) {
	app := setup(t)
	result := func(total int, recs ...alumni.Alumnus) []byte {
		return marshallObj(t, directory.Result[alumni.Alumnus]{Records: recs, Count: len(recs), Total: total})
	}

	runHTTPTests(t, app, []httpTest{
		{
			name:     "query all",
			method:   http.MethodGet,
			path:     "/v1/alumni",
			wantCode: http.StatusOK,
			wantData: result(8, fixtures.Alumni()...),
		},
		{
			name:     "query by department",
			method:   http.MethodGet,
			path:     "/v1/alumni?department=CSE",
			wantCode: http.StatusOK,
			wantData: result(8, pickAlumni(1, 3, 6, 8)...),
		},
		{
			name:     "search and online",
			method:   http.MethodGet,
			path:     "/v1/alumni?search=BANGALORE&online=true",
			wantCode: http.StatusOK,
			wantData: result(8, pickAlumni(1, 6)...),
		},
		{
			name:     "sentinel values",
			method:   http.MethodGet,
			path:     "/v1/alumni?department=all&online=All&search=tesla",
			wantCode: http.StatusOK,
			wantData: result(8, pickAlumni(5)...),
		},
		{
			name:     "no match",
			method:   http.MethodGet,
			path:     "/v1/alumni?search=nobody",
			wantCode: http.StatusOK,
			wantData: []byte(`{"results":[],"count":0,"total":8}`),
		},
		{
			name:     "invalid department",
			method:   http.MethodGet,
			path:     "/v1/alumni?department=Law",
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"department": "unknown department"}),
		},
		{
			name:     "invalid online",
			method:   http.MethodGet,
			path:     "/v1/alumni?online=maybe",
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"online": "must be one of true, false or all"}),
		},
		{
			name:     "filters",
			method:   http.MethodGet,
			path:     "/v1/alumni/filters",
			wantCode: http.StatusOK,
			wantData: []byte(`[
				{"name":"department","default":"all","values":["CSE","ECE","EE","ME","CE"]},
				{"name":"online","default":"all","values":["true","false"]}
			]`),
		},
		{
			name:     "retrieve",
			method:   http.MethodGet,
			path:     "/v1/alumni/2",
			wantCode: http.StatusOK,
			wantData: marshallObj(t, pickAlumni(2)[0]),
		},
		{
			name:     "retrieve: not found",
			method:   http.MethodGet,
			path:     "/v1/alumni/42",
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, httpErr{Error: "alumnus not found"}),
		},
	})
}

func Test_paperApi(t *testing.T) {
	app := setup(t)
	result := func(recs ...paper.Paper) []byte {
		return marshallObj(t, directory.Result[paper.Paper]{Records: recs, Count: len(recs), Total: 12})
	}

	runHTTPTests(t, app, []httpTest{
		{
			name:     "query all",
			method:   http.MethodGet,
			path:     "/v1/papers",
			wantCode: http.StatusOK,
			wantData: result(fixtures.Papers()...),
		},
		{
			name:     "query by every criterion",
			method:   http.MethodGet,
			path:     "/v1/papers?department=CSE&year=2023&semester=4th&exam_type=End+Sem",
			wantCode: http.StatusOK,
			wantData: result(pickPapers(4)...),
		},
		{
			name:     "common papers only under the sentinel",
			method:   http.MethodGet,
			path:     "/v1/papers?department=All&search=mathematics",
			wantCode: http.StatusOK,
			wantData: result(pickPapers(3)...),
		},
		{
			name:     "common papers hidden by a department",
			method:   http.MethodGet,
			path:     "/v1/papers?department=CSE&search=mathematics",
			wantCode: http.StatusOK,
			wantData: []byte(`{"results":[],"count":0,"total":12}`),
		},
		{
			name:     "invalid criteria",
			method:   http.MethodGet,
			path:     "/v1/papers?year=1999&exam_type=Quiz",
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{
				"year":      "no papers are archived for this year",
				"exam_type": "unknown exam type",
			}),
		},
		{
			name:     "retrieve",
			method:   http.MethodGet,
			path:     "/v1/papers/11",
			wantCode: http.StatusOK,
			wantData: marshallObj(t, pickPapers(11)[0]),
		},
		{
			name:     "retrieve: not found",
			method:   http.MethodGet,
			path:     "/v1/papers/99",
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, httpErr{Error: "paper not found"}),
		},
	})

	req, rec := newRequest(http.MethodGet, "/v1/papers/filters")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("filters: code = %v; want %v", rec.Code, http.StatusOK)
	}
}
