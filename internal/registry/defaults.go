package registry

import "github.com/newslens/newslens/internal/model"

// defaultSources seeds a fresh registry. Ratings follow the usual media
// bias charts; they are starting points, not judgments — edit the YAML
// file or use `newslens sources add/remove` to tune them.
func defaultSources() map[string][]model.Source {
	return map[string][]model.Source{
		"US": {
			{ID: "ap-news", Name: "AP News", Country: "US", HomepageURL: "https://apnews.com", RSSURL: "https://rsshub.app/apnews/topics/apf-topnews", Bias: -0.5, Reliability: 9.0},
			{ID: "cnn", Name: "CNN", Country: "US", HomepageURL: "https://www.cnn.com", RSSURL: "http://rss.cnn.com/rss/cnn_topstories.rss", Bias: -4.5, Reliability: 6.5},
			{ID: "fox-news", Name: "Fox News", Country: "US", HomepageURL: "https://www.foxnews.com", RSSURL: "http://feeds.foxnews.com/foxnews/latest", Bias: 6.5, Reliability: 5.0},
			{ID: "msnbc", Name: "MSNBC", Country: "US", HomepageURL: "https://www.msnbc.com", RSSURL: "https://www.msnbc.com/feeds/latest", Bias: -6.5, Reliability: 5.5},
			{ID: "npr", Name: "NPR", Country: "US", HomepageURL: "https://www.npr.org", RSSURL: "https://feeds.npr.org/1001/rss.xml", Bias: -2.5, Reliability: 8.5},
			{ID: "nyt", Name: "New York Times", Country: "US", HomepageURL: "https://www.nytimes.com", RSSURL: "https://rss.nytimes.com/services/xml/rss/nyt/HomePage.xml", Bias: -4.0, Reliability: 8.0},
			{ID: "newsmax", Name: "Newsmax", Country: "US", HomepageURL: "https://www.newsmax.com", RSSURL: "https://www.newsmax.com/rss/Newsfront/16/", Bias: 7.5, Reliability: 3.0},
			{ID: "reuters", Name: "Reuters", Country: "US", HomepageURL: "https://www.reuters.com", RSSURL: "https://www.reutersagency.com/feed/?best-topics=top-news", Bias: 0.0, Reliability: 9.5},
			{ID: "wapo", Name: "Washington Post", Country: "US", HomepageURL: "https://www.washingtonpost.com", RSSURL: "http://feeds.washingtonpost.com/rss/national", Bias: -4.0, Reliability: 7.5},
			{ID: "wsj", Name: "Wall Street Journal", Country: "US", HomepageURL: "https://www.wsj.com", RSSURL: "https://feeds.a.dj.com/rss/RSSWorldNews.xml", Bias: 3.5, Reliability: 8.0},
			{ID: "wash-examiner", Name: "Washington Examiner", Country: "US", HomepageURL: "https://www.washingtonexaminer.com", RSSURL: "https://www.washingtonexaminer.com/feed", Bias: 5.5, Reliability: 5.0},
		},
		"GB": {
			{ID: "bbc", Name: "BBC News", Country: "GB", HomepageURL: "https://www.bbc.co.uk/news", RSSURL: "https://feeds.bbci.co.uk/news/rss.xml", Bias: -1.0, Reliability: 9.0},
			{ID: "daily-mail", Name: "Daily Mail", Country: "GB", HomepageURL: "https://www.dailymail.co.uk", RSSURL: "https://www.dailymail.co.uk/news/index.rss", Bias: 5.5, Reliability: 3.5},
			{ID: "guardian", Name: "The Guardian", Country: "GB", HomepageURL: "https://www.theguardian.com", RSSURL: "https://www.theguardian.com/uk/rss", Bias: -5.0, Reliability: 7.5},
			{ID: "telegraph", Name: "The Telegraph", Country: "GB", HomepageURL: "https://www.telegraph.co.uk", RSSURL: "https://www.telegraph.co.uk/rss.xml", Bias: 4.5, Reliability: 6.5},
			{ID: "times", Name: "The Times", Country: "GB", HomepageURL: "https://www.thetimes.co.uk", RSSURL: "https://www.thetimes.co.uk/rss", Bias: 2.5, Reliability: 7.5},
		},
	}
}
