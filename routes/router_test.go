package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cppla/yatube/cache"
	"github.com/cppla/yatube/config"
	"github.com/cppla/yatube/events"
	"github.com/cppla/yatube/middleware"
	"github.com/cppla/yatube/models"
	"github.com/cppla/yatube/testutil"
	"github.com/cppla/yatube/utils"
)

const testSecret = "router-test-secret"

// tiny valid GIF
var gifBytes = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

type testApp struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
	cache  *cache.MemoryStore
	events *testutil.Recorder
	cfg    config.AppConfig
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dir := t.TempDir()
	cfg := config.AppConfig{
		SecretKey:          testSecret,
		GinMode:            "test",
		GinPath:            filepath.Join(dir, "logs", "gin.log"),
		LogLevel:           "error",
		RateLimitPerMinute: 10000,
		AllowedOrigins:     []string{"*"},
		IndexCacheSeconds:  20,
		SessionTTLHours:    1,
		MediaRoot:          filepath.Join(dir, "media"),
		MediaURL:           "/media/",
	}
	app := &testApp{
		t:      t,
		db:     testutil.NewDB(t),
		cache:  cache.NewMemoryStore(),
		events: &testutil.Recorder{},
		cfg:    cfg,
	}
	app.engine = SetupRouter(cfg, Options{
		DB:        app.db,
		Cache:     app.cache,
		Revoked:   cache.NewMemoryStore(),
		Events:    app.events,
		StaticDir: dir,
	})
	return app
}

func (a *testApp) cookie(u *models.User) *http.Cookie {
	token, err := utils.GenerateToken(testSecret, u.ID, u.Username, time.Hour)
	require.NoError(a.t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func (a *testApp) serve(req *http.Request, as *models.User) *httptest.ResponseRecorder {
	if as != nil {
		req.AddCookie(a.cookie(as))
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(path string, as *models.User) *httptest.ResponseRecorder {
	return a.serve(httptest.NewRequest(http.MethodGet, path, nil), as)
}

func (a *testApp) post(path string, form url.Values, as *models.User) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.serve(req, as)
}

func (a *testApp) count(model interface{}) int64 {
	return testutil.Count(a.t, a.db, model)
}

func (a *testApp) reload(id uint) models.Post {
	var p models.Post
	require.NoError(a.t, a.db.First(&p, id).Error)
	return p
}

func postURL(id uint) string {
	return "/posts/" + strconv.FormatUint(uint64(id), 10) + "/"
}

func groupValue(g *models.Group) string {
	return strconv.FormatUint(uint64(g.ID), 10)
}

func TestPublicPages(t *testing.T) {
	app := newTestApp(t)
	leo := testutil.CreateUser(t, app.db, "leo")
	cats := testutil.CreateGroup(t, app.db, "cats")
	testutil.CreateGroup(t, app.db, "dogs")
	post := testutil.CreatePost(t, app.db, leo, cats, "Whiskers all day")

	cases := []struct {
		path   string
		status int
		want   string
	}{
		{"/", http.StatusOK, "Whiskers all day"},
		{"/group/cats/", http.StatusOK, "Whiskers all day"},
		{"/profile/leo/", http.StatusOK, "Whiskers all day"},
		{postURL(post.ID), http.StatusOK, "Whiskers all day"},
		{"/about/author/", http.StatusOK, "About the author"},
		{"/about/contacts/", http.StatusOK, "Contacts"},
		{"/auth/login/", http.StatusOK, `name="password"`},
		{"/auth/signup/", http.StatusOK, `name="password2"`},
		{"/group/nope/", http.StatusNotFound, "Page not found"},
		{"/profile/nobody/", http.StatusNotFound, "Page not found"},
		{"/posts/9999/", http.StatusNotFound, "Page not found"},
		{"/posts/abc/", http.StatusNotFound, "Page not found"},
		{"/unexisting_page/", http.StatusNotFound, "Page not found"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := app.get(tc.path, nil)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}

	t.Run("post of another group is absent", func(t *testing.T) {
		w := app.get("/group/dogs/", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "Whiskers all day")
	})
}

func TestPostDetailContext(t *testing.T) {
	app := newTestApp(t)
	leo := testutil.CreateUser(t, app.db, "leo")
	testutil.CreatePost(t, app.db, leo, nil, "older")
	post := testutil.CreatePost(t, app.db, leo, nil, "a rather long post text that keeps going")
	require.NoError(t, app.db.Create(&models.Comment{PostID: post.ID, AuthorID: leo.ID, Text: "first comment"}).Error)

	w := app.get(postURL(post.ID), leo)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<title>Post a rather long post text that k - Yatube</title>")
	assert.Contains(t, body, "Posts by this author: <span>2</span>")
	assert.Contains(t, body, "first comment")
	assert.Contains(t, body, "/edit/")

	anon := app.get(postURL(post.ID), nil).Body.String()
	assert.NotContains(t, anon, "/edit/")
	assert.NotContains(t, anon, "Add a comment")
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	w := app.get("/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, map[string]interface{}{"status": "ok"}, resp.Data)
}

func TestAnonymousIsSentToLogin(t *testing.T) {
	app := newTestApp(t)
	leo := testutil.CreateUser(t, app.db, "leo")
	post := testutil.CreatePost(t, app.db, leo, nil, "text")

	w := app.get("/create/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login/?next=/create/", w.Header().Get("Location"))

	for _, path := range []string{
		postURL(post.ID) + "edit/",
		postURL(post.ID) + "comment/",
		"/follow/",
		"/profile/leo/follow/",
		"/profile/leo/unfollow/",
	} {
		w := app.get(path, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/auth/login/?next="+path, w.Header().Get("Location"), path)
	}

	before := app.count(&models.Post{})
	w = app.post("/create/", url.Values{"text": {"sneaky"}}, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, before, app.count(&models.Post{}))
}

func TestCreatePost(t *testing.T) {
	app := newTestApp(t)
	leo := testutil.CreateUser(t, app.db, "leo")
	cats := testutil.CreateGroup(t, app.db, "cats")

	t.Run("form", func(t *testing.T) {
		w := app.get("/create/", leo)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `<option value="`+groupValue(cats)+`">Group cats</option>`)
	})

	t.Run("valid", func(t *testing.T) {
		before := app.count(&models.Post{})
		w := app.post("/create/", url.Values{"text": {"Brand new"}, "group": {groupValue(cats)}}, leo)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/profile/leo/", w.Header().Get("Location"))
		assert.Equal(t, before+1, app.count(&models.Post{}))

		var p models.Post
		require.NoError(t, app.db.Order("id DESC").First(&p).Error)
		assert.Equal(t, "Brand new", p.Text)
		assert.Equal(t, leo.ID, p.AuthorID)
		require.NotNil(t, p.GroupID)
		assert.Equal(t, cats.ID, *p.GroupID)
		assert.Equal(t, []string{events.PostCreated}, app.events.Subjects())
	})

	t.Run("invalid", func(t *testing.T) {
		before := app.count(&models.Post{})
		w := app.post("/create/", url.Values{"text": {"   "}, "group": {"9999"}}, leo)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "This field is required.")
		assert.Contains(t, w.Body.String(), "Select a valid choice.")
		assert.Equal(t, before, app.count(&models.Post{}))
	})
}

func TestCreatePostWithImage(t *testing.T) {
	app := newTestApp(t)
	leo := testutil.CreateUser(t, app.db, "leo")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("text", "with a picture"))
	fw, err := mw.CreateFormFile("image", "Small.GIF")
	require.NoError(t, err)
	_, err = fw.Write(gifBytes)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/create/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := app.serve(req, leo)
	require.Equal(t, http.StatusFound, w.Code)

	var p models.Post
	require.NoError(t, app.db.Order("id DESC").First(&p).Error)
	require.True(t, strings.HasPrefix(p.Image, "/media/posts/"), p.Image)
	assert.True(t, strings.HasSuffix(p.Image, ".gif"))

	onDisk := filepath.Join(app.cfg.MediaRoot, filepath.FromSlash(strings.TrimPrefix(p.Image, "/media/")))
	_, err = os.Stat(onDisk)
	require.NoError(t, err)

	served := app.get(p.Image, nil)
	assert.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, gifBytes, served.Body.Bytes())

	detail := app.get(postURL(p.ID), nil)
	assert.Contains(t, detail.Body.String(), `src="`+p.Image+`"`)
}

func TestEditPost(t *testing.T) {
	app := newTestApp(t)
	author := testutil.CreateUser(t, app.db, "author")
	stranger := testutil.CreateUser(t, app.db, "stranger")
	cats := testutil.CreateGroup(t, app.db, "cats")
	dogs := testutil.CreateGroup(t, app.db, "dogs")
	post := testutil.CreatePost(t, app.db, author, cats, "original")
	edit := postURL(post.ID) + "edit/"

	t.Run("non author is redirected without changes", func(t *testing.T) {
		w := app.get(edit, stranger)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, postURL(post.ID), w.Header().Get("Location"))

		w = app.post(edit, url.Values{"text": {"hijacked"}, "group": {groupValue(dogs)}}, stranger)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, postURL(post.ID), w.Header().Get("Location"))

		got := app.reload(post.ID)
		assert.Equal(t, "original", got.Text)
		require.NotNil(t, got.GroupID)
		assert.Equal(t, cats.ID, *got.GroupID)
		assert.Empty(t, app.events.Events)
	})

	t.Run("author sees a filled form", func(t *testing.T) {
		w := app.get(edit, author)
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, ">original</textarea>")
		assert.Contains(t, body, `<option value="`+groupValue(cats)+`" selected>`)
	})

	t.Run("invalid data keeps the post", func(t *testing.T) {
		w := app.post(edit, url.Values{"text": {""}}, author)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "This field is required.")
		assert.Equal(t, "original", app.reload(post.ID).Text)
	})

	t.Run("author updates text and group", func(t *testing.T) {
		w := app.post(edit, url.Values{"text": {"changed"}, "group": {groupValue(dogs)}}, author)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, postURL(post.ID), w.Header().Get("Location"))

		got := app.reload(post.ID)
		assert.Equal(t, "changed", got.Text)
		require.NotNil(t, got.GroupID)
		assert.Equal(t, dogs.ID, *got.GroupID)
		assert.Equal(t, []string{events.PostUpdated}, app.events.Subjects())
	})

	t.Run("clearing the group", func(t *testing.T) {
		w := app.post(edit, url.Values{"text": {"no group"}, "group": {""}}, author)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Nil(t, app.reload(post.ID).GroupID)
	})

	t.Run("missing post", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, app.get("/posts/9999/edit/", author).Code)
	})
}

func TestAddComment(t *testing.T) {
	app := newTestApp(t)
	author := testutil.CreateUser(t, app.db, "author")
	reader := testutil.CreateUser(t, app.db, "reader")
	post := testutil.CreatePost(t, app.db, author, nil, "commentable")
	comment := postURL(post.ID) + "comment/"

	before := app.count(&models.Comment{})
	w := app.post(comment, url.Values{"text": {"Nice one"}}, reader)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, postURL(post.ID), w.Header().Get("Location"))
	assert.Equal(t, before+1, app.count(&models.Comment{}))
	assert.Equal(t, []string{events.CommentCreated}, app.events.Subjects())

	detail := app.get(postURL(post.ID), nil).Body.String()
	assert.Contains(t, detail, "Nice one")

	// empty comments are dropped without an error page
	w = app.post(comment, url.Values{"text": {"  "}}, reader)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, postURL(post.ID), w.Header().Get("Location"))
	w = app.get(comment, reader)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, before+1, app.count(&models.Comment{}))

	assert.Equal(t, http.StatusNotFound, app.post("/posts/9999/comment/", url.Values{"text": {"x"}}, reader).Code)
}

func TestPaginator(t *testing.T) {
	app := newTestApp(t)
	leo := testutil.CreateUser(t, app.db, "leo")
	cats := testutil.CreateGroup(t, app.db, "cats")
	for i := 0; i < 14; i++ {
		testutil.CreatePost(t, app.db, leo, cats, "post number "+strconv.Itoa(i))
	}

	for _, base := range []string{"/", "/group/cats/", "/profile/leo/"} {
		t.Run(base, func(t *testing.T) {
			cards := func(path string) int {
				w := app.get(path, nil)
				require.Equal(t, http.StatusOK, w.Code)
				return strings.Count(w.Body.String(), `<article class="post">`)
			}
			assert.Equal(t, 10, cards(base))
			assert.Equal(t, 4, cards(base+"?page=2"))
			assert.Equal(t, 4, cards(base+"?page=99"))
			assert.Equal(t, 4, cards(base+"?page=99999999999999999999"))
			assert.Equal(t, 10, cards(base+"?page=oops"))
		})
	}
}

func TestFollowRoundTrip(t *testing.T) {
	app := newTestApp(t)
	fan := testutil.CreateUser(t, app.db, "fan")
	star := testutil.CreateUser(t, app.db, "star")
	loner := testutil.CreateUser(t, app.db, "loner")
	testutil.CreatePost(t, app.db, star, nil, "star post")
	testutil.CreatePost(t, app.db, loner, nil, "loner post")

	start := app.count(&models.Follow{})

	w := app.get("/profile/star/follow/", fan)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/star/", w.Header().Get("Location"))
	assert.Equal(t, start+1, app.count(&models.Follow{}))

	// idempotent
	app.get("/profile/star/follow/", fan)
	assert.Equal(t, start+1, app.count(&models.Follow{}))

	profile := app.get("/profile/star/", fan).Body.String()
	assert.Contains(t, profile, "/profile/star/unfollow/")

	feed := app.get("/follow/", fan)
	require.Equal(t, http.StatusOK, feed.Code)
	assert.Contains(t, feed.Body.String(), "star post")
	assert.NotContains(t, feed.Body.String(), "loner post")

	// the followed author sees nothing in their own feed
	assert.NotContains(t, app.get("/follow/", star).Body.String(), "star post")

	w = app.get("/profile/star/unfollow/", fan)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/star/", w.Header().Get("Location"))
	assert.Equal(t, start, app.count(&models.Follow{}))

	assert.Equal(t, http.StatusNotFound, app.get("/profile/star/unfollow/", fan).Code)
	assert.Equal(t, http.StatusNotFound, app.get("/profile/nobody/follow/", fan).Code)

	assert.Equal(t, []string{events.FollowCreated, events.FollowDeleted}, app.events.Subjects())
}

func TestSelfFollowIsIgnored(t *testing.T) {
	app := newTestApp(t)
	leo := testutil.CreateUser(t, app.db, "leo")

	start := app.count(&models.Follow{})
	w := app.get("/profile/leo/follow/", leo)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/leo/", w.Header().Get("Location"))
	assert.Equal(t, start, app.count(&models.Follow{}))

	profile := app.get("/profile/leo/", leo).Body.String()
	assert.NotContains(t, profile, "/profile/leo/follow/")
}

func TestIndexCache(t *testing.T) {
	app := newTestApp(t)
	leo := testutil.CreateUser(t, app.db, "leo")
	post := testutil.CreatePost(t, app.db, leo, nil, "soon to be gone")

	first := app.get("/", nil)
	require.Equal(t, http.StatusOK, first.Code)
	require.Contains(t, first.Body.String(), "soon to be gone")

	require.NoError(t, app.db.Delete(&models.Post{}, post.ID).Error)

	second := app.get("/", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())

	app.cache.InvalidatePrefix(context.Background(), IndexCachePrefix)

	third := app.get("/", nil)
	require.Equal(t, http.StatusOK, third.Code)
	assert.NotEqual(t, first.Body.Bytes(), third.Body.Bytes())
	assert.NotContains(t, third.Body.String(), "soon to be gone")
}

func TestIndexCacheIsNotSharedWithSignedInUsers(t *testing.T) {
	app := newTestApp(t)
	leo := testutil.CreateUser(t, app.db, "leo")
	testutil.CreatePost(t, app.db, leo, nil, "hello from leo")

	mine := app.get("/", leo)
	require.Equal(t, http.StatusOK, mine.Code)
	assert.Contains(t, mine.Body.String(), "Log out")

	anon := app.get("/", nil)
	require.Equal(t, http.StatusOK, anon.Code)
	body := anon.Body.String()
	assert.NotContains(t, body, "Log out")
	assert.NotContains(t, body, `href="/create/"`)
	assert.Contains(t, body, `href="/auth/login/"`)

	// the anonymous copy is cached and not handed to leo
	again := app.get("/", leo)
	assert.Contains(t, again.Body.String(), "Log out")
	assert.Equal(t, body, app.get("/", nil).Body.String())
}

func TestSignupLoginLogout(t *testing.T) {
	app := newTestApp(t)

	t.Run("signup", func(t *testing.T) {
		before := app.count(&models.User{})
		w := app.post("/auth/signup/", url.Values{
			"username": {"newbie"}, "password1": {"s3cret-pass"}, "password2": {"s3cret-pass"},
		}, nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Equal(t, before+1, app.count(&models.User{}))
		assert.NotEmpty(t, w.Result().Cookies())
	})

	t.Run("signup errors", func(t *testing.T) {
		before := app.count(&models.User{})
		w := app.post("/auth/signup/", url.Values{
			"username": {"newbie"}, "password1": {"s3cret-pass"}, "password2": {"s3cret-pass"},
		}, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "A user with that username already exists.")

		w = app.post("/auth/signup/", url.Values{
			"username": {"bad name!"}, "password1": {"short"}, "password2": {"other"},
		}, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Enter a valid username.")
		assert.Contains(t, w.Body.String(), "Ensure this value has at least 8 characters.")
		assert.Equal(t, before, app.count(&models.User{}))
	})

	t.Run("password longer than bcrypt accepts", func(t *testing.T) {
		before := app.count(&models.User{})
		long := strings.Repeat("p", 100)
		w := app.post("/auth/signup/", url.Values{
			"username": {"longpass"}, "password1": {long}, "password2": {long},
		}, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ensure this value has at most 72 bytes.")
		assert.Equal(t, before, app.count(&models.User{}))
	})

	leo := testutil.CreateUser(t, app.db, "leo")

	t.Run("bad password", func(t *testing.T) {
		w := app.post("/auth/login/", url.Values{"username": {"leo"}, "password": {"wrong"}}, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Please enter a correct username and password.")
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("login follows a local next", func(t *testing.T) {
		w := app.post("/auth/login/", url.Values{
			"username": {"leo"}, "password": {testutil.Password}, "next": {"/create/"},
		}, nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/create/", w.Header().Get("Location"))

		var session *http.Cookie
		for _, c := range w.Result().Cookies() {
			if c.Name == middleware.SessionCookie {
				session = c
			}
		}
		require.NotNil(t, session)

		req := httptest.NewRequest(http.MethodGet, "/create/", nil)
		req.AddCookie(session)
		w = app.serve(req, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		req = httptest.NewRequest(http.MethodGet, "/auth/logout/", nil)
		req.AddCookie(session)
		w = app.serve(req, nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		// the old token was revoked
		req = httptest.NewRequest(http.MethodGet, "/create/", nil)
		req.AddCookie(session)
		w = app.serve(req, nil)
		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("login ignores a foreign next", func(t *testing.T) {
		w := app.post("/auth/login/", url.Values{
			"username": {leo.Username}, "password": {testutil.Password}, "next": {"https://evil.example/"},
		}, nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("login page keeps next", func(t *testing.T) {
		w := app.get("/auth/login/?next=/create/", nil)
		assert.Contains(t, w.Body.String(), `name="next" value="/create/"`)
	})
}
